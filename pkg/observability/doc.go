/*
Package observability turns machine lifecycle events into Prometheus metrics.

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)
	m, _ := vending.New(vending.WithLifecycleHooks(metrics.Hooks()))

The collectors live in the supplied registerer; exposing them is left to the host.
*/
package observability
