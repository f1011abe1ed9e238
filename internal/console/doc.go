// Package console is a line-oriented terminal front end for a spelling quest.
package console
