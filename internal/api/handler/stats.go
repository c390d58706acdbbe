package handler

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var ErrFailedToRegisterStats = errors.New("failed to register stats collector")

// Stats counts broadcast outcomes. A nil *Stats is a no-op, so the handlers
// work unchanged with metrics disabled.
type Stats struct {
	submittedTxs prometheus.Counter
	relayedTxs   prometheus.Counter
	rejectedTxs  prometheus.Counter
	nodeFailures prometheus.Counter
}

func NewStats() (*Stats, error) {
	p := &Stats{
		submittedTxs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "txrelay_api_submitted_txs",
			Help: "Nr of txs submitted for broadcast",
		}),
		relayedTxs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "txrelay_api_relayed_txs",
			Help: "Nr of txs accepted by the node",
		}),
		rejectedTxs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "txrelay_api_rejected_txs",
			Help: "Nr of txs rejected by the node",
		}),
		nodeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "txrelay_api_node_failures",
			Help: "Nr of failed node RPC round trips",
		}),
	}

	err := registerStats(
		p.submittedTxs,
		p.relayedTxs,
		p.rejectedTxs,
		p.nodeFailures,
	)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Stats) AddSubmitted(inc int) {
	if s == nil {
		return
	}
	s.submittedTxs.Add(float64(inc))
}

func (s *Stats) AddRelayed(inc int) {
	if s == nil {
		return
	}
	s.relayedTxs.Add(float64(inc))
}

func (s *Stats) AddRejected(inc int) {
	if s == nil {
		return
	}
	s.rejectedTxs.Add(float64(inc))
}

func (s *Stats) AddNodeFailure(inc int) {
	if s == nil {
		return
	}
	s.nodeFailures.Add(float64(inc))
}

func (s *Stats) UnregisterStats() {
	if s == nil {
		return
	}
	unregisterStats(
		s.submittedTxs,
		s.relayedTxs,
		s.rejectedTxs,
		s.nodeFailures,
	)
}

func registerStats(cs ...prometheus.Collector) error {
	for _, c := range cs {
		err := prometheus.Register(c)
		if err != nil {
			return errors.Join(ErrFailedToRegisterStats, err)
		}
	}

	return nil
}

func unregisterStats(cs ...prometheus.Collector) {
	for _, c := range cs {
		_ = prometheus.Unregister(c)
	}
}
