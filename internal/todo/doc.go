// Package todo parses, sorts, and re-renders checklist regions.
//
// A checklist item is a line of the form
//
//	<indent><bullet> [<status>] <text>
//
// where bullet is "-" or "*" and status is any single character.
//
// # Pipeline
//
// A document is processed in five steps, each region independently:
//
//  1. Segment splits the lines into sections. A section starts at an item
//     line and continues through item lines and through free-text lines
//     indented exactly one level below the most recent item. Blank lines,
//     headings and other text end the section.
//  2. Build turns a section into a Region, nesting each item under the
//     nearest preceding item with a smaller depth.
//  3. Siblings are stably sorted by the rank of their status character,
//     then optionally by text.
//  4. The region is rendered back to text.
//  5. The rendered text and the half-open line span it replaces are
//     returned as a Replacement.
//
// # Depth
//
// One tab or four spaces is one level. Leftover spaces (fewer than four)
// do not count.
//
// # Order strings
//
// An order is written as comma-separated status characters, highest
// priority first. An empty token stands for the space character, so the
// default "!,*,?,/,,x,-" ranks unchecked items ("[ ]") fifth. Characters
// missing from the order sort last.
package todo
