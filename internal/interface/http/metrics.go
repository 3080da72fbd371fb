package handlers

import "expvar"

// authMetrics is published under "auth" on /api/debug/vars.
var authMetrics = expvar.NewMap("auth")

const (
	metricRegisterOK   = "register_success"
	metricRegisterFail = "register_failure"
	metricLoginOK      = "login_success"
	metricLoginFail    = "login_failure"
	metricProfileOK    = "profile_success"
	metricProfileFail  = "profile_failure"
)

func count(ok bool, success, failure string) {
	if ok {
		authMetrics.Add(success, 1)
		return
	}
	authMetrics.Add(failure, 1)
}
