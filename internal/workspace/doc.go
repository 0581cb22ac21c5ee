// Package workspace manages the tool's private directory under the local
// application data root and the scratch directory inside it.
package workspace
