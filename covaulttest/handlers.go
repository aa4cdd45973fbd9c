package covaulttest

import "github.com/covault/covault"

// Handler is a mock implementation of the covault.Handler interface.
//
// Each method call is counted and the declared results returned.
type Handler struct {
	checkCall   int
	CheckResult covault.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult covault.DeliverResult
	DeliverErr    error
}

var _ covault.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx covault.Context, db covault.KVStore, tx covault.Tx) (covault.CheckResult, error) {
	h.checkCall++
	return h.CheckResult, h.CheckErr
}

func (h *Handler) Deliver(ctx covault.Context, db covault.KVStore, tx covault.Tx) (covault.DeliverResult, error) {
	h.deliverCall++
	return h.DeliverResult, h.DeliverErr
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
