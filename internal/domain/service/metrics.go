package service

// SessionMetrics records session engine outcomes.
type SessionMetrics interface {
	ObserveLogin(outcome string)
	ObserveRefresh(success bool)
	ObserveStatusCheck(outcome string)
	ObserveGuardDecision(kind, reason string)
}
