// Package fixture loads recorded drunken bishop renderings and checks them
// against the current implementation.
//
// A fixture file is a list of cases:
//
//	[
//	  {
//	    "rows": 3, "cols": 3, "limit": 0, "cycle": false,
//	    "input": "\u0000",
//	    "output": ["+---+", "|E  |", "| S |", "|   |", "+---+"]
//	  }
//	]
//
// input is consumed as raw bytes; output holds the framed art one line per
// entry. JSON (.json) and YAML (.yaml, .yml) files share the same layout.
package fixture
