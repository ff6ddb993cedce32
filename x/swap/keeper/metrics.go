package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SwapMetrics holds all Prometheus metrics for the swap module
type SwapMetrics struct {
	SwapsTotal       *prometheus.CounterVec
	SwapVolume       *prometheus.CounterVec
	LiquidityAdded   *prometheus.CounterVec
	LiquidityRemoved *prometheus.CounterVec
	MakerDeposits    *prometheus.CounterVec
	DustSwept        *prometheus.CounterVec
	PairsTotal       prometheus.Gauge
	PairCreations    prometheus.Counter
}

var (
	swapMetricsOnce sync.Once
	swapMetrics     *SwapMetrics
)

// NewSwapMetrics creates and registers swap metrics (singleton pattern)
func NewSwapMetrics() *SwapMetrics {
	swapMetricsOnce.Do(func() {
		swapMetrics = &SwapMetrics{
			SwapsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "swaps",
					Subsystem: "swap",
					Name:      "swaps_total",
					Help:      "Total number of pair swaps executed",
				},
				[]string{"asset_a", "asset_b"},
			),
			SwapVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "swaps",
					Subsystem: "swap",
					Name:      "swap_volume",
					Help:      "Cumulative router input volume by asset",
				},
				[]string{"asset"},
			),
			LiquidityAdded: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "swaps",
					Subsystem: "swap",
					Name:      "liquidity_added_total",
					Help:      "Total number of liquidity deposits by pair",
				},
				[]string{"asset_a", "asset_b"},
			),
			LiquidityRemoved: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "swaps",
					Subsystem: "swap",
					Name:      "liquidity_removed_total",
					Help:      "Total number of liquidity withdrawals by pair",
				},
				[]string{"asset_a", "asset_b"},
			),
			MakerDeposits: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "swaps",
					Subsystem: "swap",
					Name:      "maker_deposits_total",
					Help:      "Total number of liquidity-maker conversions by pair",
				},
				[]string{"asset_in", "asset_out"},
			),
			DustSwept: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "swaps",
					Subsystem: "swap",
					Name:      "dust_swept",
					Help:      "Cumulative maker dust swept by asset",
				},
				[]string{"asset"},
			),
			PairsTotal: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "swaps",
					Subsystem: "swap",
					Name:      "pairs_total",
					Help:      "Number of registered pairs",
				},
			),
			PairCreations: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "swaps",
					Subsystem: "swap",
					Name:      "pair_creations_total",
					Help:      "Total number of pair creations",
				},
			),
		}
	})
	return swapMetrics
}
