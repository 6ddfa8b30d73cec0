package tracker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissionsAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reply_tracker_submissions_accepted_total",
		Help: "Links accepted and persisted by the quota ledger.",
	})
	submissionsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reply_tracker_submissions_rejected_total",
		Help: "Candidate links rejected by the quota ledger.",
	}, []string{"reason"})
	resourcesRecreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reply_tracker_resources_recreated_total",
		Help: "Tracking resources recreated by the lifecycle reconciler.",
	})
	membersDeparted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reply_tracker_members_departed_total",
		Help: "Tracking periods closed because the member left.",
	})
)
