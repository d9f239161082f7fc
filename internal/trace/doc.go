// Package trace records how a DynamicArray grows under a sequence of appends
// and renders the result as a table and an ASCII capacity chart.
//
// It also carries the end-to-end scenarios used by the CLI's scenario
// command to check the container's observable contract.
package trace
