// Package pool provides pooled scratch buffers for column extraction.
//
// Every statistic splits a dataset into its x and y columns; pooling the
// column buffers keeps repeated fits from allocating. Pooled buffers are
// scratch space only and never escape the function that borrowed them.
package pool
