package api

import (
	"github.com/JaimeStill/tribunal/internal/judge"
	"github.com/JaimeStill/tribunal/internal/policies"
	"github.com/JaimeStill/tribunal/internal/reports"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Policies policies.System
	Reports  reports.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	policySystem := policies.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	judgeSystem := judge.New(
		runtime.Agent,
		runtime.Reports.JudgeTimeoutDuration(),
		runtime.Logger,
	)

	reportSystem := reports.New(
		policySystem,
		judgeSystem,
		runtime.Storage,
		runtime.Logger,
		reports.Options{
			DefaultSLADays: runtime.Reports.DefaultSLADays,
			Workers:        runtime.Reports.JudgeWorkers,
			MaxUploadSize:  runtime.MaxUpload,
		},
	)

	return &Domain{
		Policies: policySystem,
		Reports:  reportSystem,
	}
}
