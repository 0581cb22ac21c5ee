// Package locate reports which SDK directory the bundle command would use.
package locate
