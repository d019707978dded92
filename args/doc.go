/*
Package args implements a declarative command-line argument parser.
Callers register named options, flags, and positional parameters bound
to Go variables, then invoke a single Parse call over the process
argument vector to populate the bound values, validate constraints, and
produce actionable errors and formatted help text.

# Registering Parameters

Each parameter is registered with one call that names its destination,
its identity, and its constraints. Because Go methods cannot carry type
parameters, the typed registration entry points are package-level
functions taking the parser first:

	p := args.New("Copies files between hosts")

	var host string
	args.Named(p, &host, "host", 'H', "Remote host", args.Required)

	var verbose bool
	args.Flag(p, &verbose, "verbose", 'v', "Verbose output")

	var files []string
	args.PositionalList(p, &files, "file", "Files to copy", args.Required)

	if err := p.Parse(os.Args); err != nil {
		// print err, show help, exit non-zero
	}

Scalar destinations may be of type string, int, int64, uint, uint64,
float64, bool, or time.Duration. List destinations are slices of those
types and accumulate one element per occurrence. Enumerated parameters
restrict tokens to a fixed, ordered literal-to-value mapping:

	var level int
	args.NamedEnum(p, &level, "level", 'l', "Log level",
		[]args.Choice[int]{{"debug", 0}, {"info", 1}, {"error", 2}},
		args.Optional)

# Token Grammar

	value          positional value
	-x             short option x (flag, or value in the next token)
	--name         long option (flag, or value in the next token)
	--name=value   long option with inline value

A string parameter consumes its entire value token verbatim, embedded
spaces included. Flags never consume a following token. List parameters
may be repeated; scalar named parameters may not, and repeating one is
an error rather than a silent overwrite.

# Errors

Registration and parsing both return *Error, a structured value
carrying an ErrorType tag, the parameter reference, and the offending
token. Parsing stops at the first violation. Conversions already
written to caller variables before the failing token are not rolled
back.

# Help Output

WriteHelp renders the parser description, a usage synopsis wrapped at
80 columns (breaking only between whole parameter tokens), and an
options table aligned to the longest label, with valid-value sets for
enumerated parameters. The executable display name is derived from
argv[0] at parse time.
*/
package args
