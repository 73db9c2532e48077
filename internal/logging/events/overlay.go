package events

import "stormreader/internal/logging"

type OverlayTracer struct{}

var Overlay = OverlayTracer{}

func (OverlayTracer) Open(name, screen string) {
	logging.Trace("overlay.open", map[string]interface{}{"overlay": name, "screen": screen})
}

func (OverlayTracer) Reopen(name string) {
	logging.Trace("overlay.reopen", map[string]interface{}{"overlay": name})
}

func (OverlayTracer) Close(name string) {
	logging.Trace("overlay.close", map[string]interface{}{"overlay": name})
}

func (OverlayTracer) CloseWithoutOpen(name string) {
	logging.Trace("overlay.close-without-open", map[string]interface{}{"overlay": name})
}

func (OverlayTracer) ProviderError(name string, err error) {
	if err == nil {
		return
	}
	logging.Trace("overlay.provider-error", map[string]interface{}{"overlay": name, "error": err.Error()})
}

func (OverlayTracer) SuppressCancel(name string) {
	logging.Trace("overlay.suppress-cancel", map[string]interface{}{"overlay": name})
}
