// Command armview watches an Automatic Ripping Machine from the terminal.
//
// Running armview with no subcommand (or `armview watch`) opens the live
// dashboard. `armview status` prints a one-shot summary suitable for scripts
// and `armview log` shows either armview's own log or a log served by ARM.
package main
