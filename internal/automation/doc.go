// Package automation runs scripted scenarios and parameter sweeps.
//
// A scenario is a YAML list of runs, each starting from a preset:
//
//	name: warmup
//	steps:
//	  - preset: tiny
//	    alpha: 0.1
//	    save_as: slow.png
//	  - preset: tiny
//	    alpha: 0.25
//	    save_as: fast.png
package automation
