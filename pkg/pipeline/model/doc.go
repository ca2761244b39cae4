// Package model provides the data structures shared by the pipeline package and its options.
// It defines the description of the steps of a flow, the description of a single call,
// and the hooks an option can implement to observe a flow.
package model
