package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# todosort configuration file
# Values can be overridden by TODOSORT_* environment variables or CLI flags

# Status order, highest priority first. Each entry is one status character;
# an empty entry stands for the space in "- [ ]".
#   !  important     *  star        ?  question
#   /  in progress      unchecked   x  done       -  cancelled
# Statuses not listed sort after every listed one.
order = "!,*,?,/,,x,-"

# Sort items with the same status alphabetically. When false, items with
# the same status keep their original order.
alphabetical_ties = true

# Number of files sorted concurrently (0 = one worker per file)
workers = 4

# Logging: level is debug, info, warn or error; format is text, json or logfmt
log_level = "info"
log_format = "text"
log_timestamps = false
log_caller = false
`
}
