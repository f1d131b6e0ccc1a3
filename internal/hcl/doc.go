// Package hcl provides the HCL implementation of the configuration Loader
// and Writer defined in the `config` package. It parses seed hierarchies,
// settings and operation scripts, and writes hierarchies back out in the
// same block syntax:
//
//	settings {
//	  history_limit = 100
//	}
//
//	employee "Mark Zuckerberg" {
//	  id = 1
//	  employee "Sarah Donald" {
//	    id = 2
//	  }
//	}
//
//	move {
//	  employee   = 6
//	  supervisor = 7
//	}
//	undo {}
//	redo {}
package hcl
