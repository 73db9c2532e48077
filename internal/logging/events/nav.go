package events

import "stormreader/internal/logging"

type NavTracer struct{}

var Nav = NavTracer{}

func (NavTracer) Cursor(levelID string, index int) {
	logging.Trace("nav.cursor", map[string]interface{}{"level": levelID, "index": index})
}

func (NavTracer) Drill(itemID string, children int) {
	logging.Trace("nav.drill", map[string]interface{}{"item": itemID, "children": children})
}

func (NavTracer) Back(levelID string) {
	logging.Trace("nav.back", map[string]interface{}{"level": levelID})
}

func (NavTracer) BackAtRoot() {
	logging.Trace("nav.back-at-root", nil)
}

func (NavTracer) SearchHit(levelID, query string, index int) {
	logging.Trace("nav.search-hit", map[string]interface{}{"level": levelID, "query": query, "index": index})
}

func (NavTracer) SearchMiss(levelID, query string) {
	logging.Trace("nav.search-miss", map[string]interface{}{"level": levelID, "query": query})
}

func (NavTracer) Refresh(levelID string, count int) {
	logging.Trace("nav.refresh", map[string]interface{}{"level": levelID, "count": count})
}

func (NavTracer) Action(itemID, kind string) {
	logging.Trace("nav.action", map[string]interface{}{"item": itemID, "kind": kind})
}

func (NavTracer) ActionError(itemID string, err error) {
	if err == nil {
		return
	}
	logging.Trace("nav.action-error", map[string]interface{}{"item": itemID, "error": err.Error()})
}

func (NavTracer) LoadError(levelID, itemID string, err error) {
	if err == nil {
		return
	}
	logging.Trace("nav.load-error", map[string]interface{}{"level": levelID, "item": itemID, "error": err.Error()})
}
