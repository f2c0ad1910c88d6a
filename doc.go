// Package argtable matches command-line arguments against a static table of flags, value
// options and positionals, calling back into the program for every match, and renders usage
// and help text from the same table.
//
// For example:
//  type arg int
//  const (
//      help arg = iota
//      number
//      file
//      out
//  )
//  var opts = argtable.New(
//      argtable.HelpFlag(help, "-h", "--help").Help("Show this help and exit."),
//      argtable.Value(number, "value", "-n", "--number").Help("Optionally specify a number."),
//      argtable.Positional(file, "file").Required().Help("Input file."),
//      argtable.Positional(out, "out").Help("Output destination."),
//  ).WithDescription("My simple utility.")
//
//  res := opts.ParseEasy(func(ctx argtable.Context[arg]) (argtable.ParseControl, error) {
//      switch ctx.ID {
//      case help:
//          opts.PrintFullHelp(ctx.Program)
//          return argtable.Quit, nil
//      case number:
//          return argtable.Continue, argtable.Unmarshal(&n, ctx.Value)
//      ...
//      }
//  }, argtable.ExitOnError())
//
// Tokens are classified as long options ("--name", "--name=value"), clusters of short options
// ("-abc", "-n5"), the "--" end of options marker, or positionals. A lone "-" is positional.
// Positionals bind to the table's positionals in declaration order. WithFlagChars swaps the
// option prefix, so a table can accept "/v" and "//verbose" instead.
//
// Tables are validated when built; a malformed table is a programming error and panics.
package argtable
