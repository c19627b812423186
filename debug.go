//go:build debug

package slicer

import "fmt"

func assert(truth bool, msg ...interface{}) {
	if !truth {
		panic("slicer: assertion failed: " + fmt.Sprint(msg...))
	}
}
