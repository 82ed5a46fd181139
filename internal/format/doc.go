// Package format turns ARM API values into the short strings the dashboard
// renders: relative and elapsed times, byte sizes, status categories and
// video or disc type labels. Functions that depend on the current time take
// it as an argument.
package format
