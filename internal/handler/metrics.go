package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dreamweaver_registrations_total",
		Help: "Total number of successful user registrations.",
	})
	tokenVerificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dreamweaver_token_verifications_total",
		Help: "Total number of token verifications by type and result.",
	}, []string{"type", "result"})
	generationSubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dreamweaver_generation_submissions_total",
		Help: "Total number of story generation submissions by result.",
	}, []string{"result"})
)
