package events

import "stormreader/internal/logging"

type RouterTracer struct{}

var Router = RouterTracer{}

func (RouterTracer) Consumed(handler string, consumed bool) {
	logging.Trace("router.dispatch", map[string]interface{}{"handler": handler, "consumed": consumed})
}

func (RouterTracer) PassThrough() {
	logging.Trace("router.pass-through", nil)
}
