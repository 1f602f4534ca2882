//go:build !release

// Package log is the application logger. Development builds write to stderr
// through the standard logger; release builds rotate into a file.
package log

import "log"

// Print writes to the standard logger.
func Print(v ...interface{}) {
	log.Print(v...)
}

// Printf writes a formatted line to the standard logger.
func Printf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

// Println writes to the standard logger.
func Println(v ...interface{}) {
	log.Println(v...)
}

// Fatal logs and exits.
func Fatal(v ...interface{}) {
	log.Fatal(v...)
}

// Fatalf logs a formatted line and exits.
func Fatalf(format string, v ...interface{}) {
	log.Fatalf(format, v...)
}

// Fatalln logs and exits.
func Fatalln(v ...interface{}) {
	log.Fatalln(v...)
}

// Debug writes with a [DEBUG] prefix. Dropped in release builds.
func Debug(v ...interface{}) {
	log.Print(append([]interface{}{"[DEBUG] "}, v...)...)
}

// Debugf writes a formatted line with a [DEBUG] prefix. Dropped in release builds.
func Debugf(format string, v ...interface{}) {
	log.Printf("[DEBUG] "+format, v...)
}
