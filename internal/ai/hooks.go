package ai

import (
	"github.com/mitchelldurbincs/GeneralsReinforcementLearning/internal/game/events"
)

// Hooks wires the engine's bookkeeping to the host's notification bus so the
// field index and the site observers stay current between ticks, instead of
// re-scanning the whole map on every Think call.
type Hooks struct {
	engine *Engine
	ids    []string
}

// Install subscribes every hook the engine needs and returns a Hooks handle
// holding the ids SubscribeFunc returned for them.
func Install(bus *events.EventBus, e *Engine) *Hooks {
	h := &Hooks{engine: e}
	h.ids = append(h.ids, bus.SubscribeFunc(events.TypeFieldPossessionChanged, h.onFieldPossessionChanged))
	h.ids = append(h.ids, bus.SubscribeFunc(events.TypeImmovableGained, h.onImmovableGained))
	h.ids = append(h.ids, bus.SubscribeFunc(events.TypeImmovableLost, h.onImmovableLost))
	h.ids = append(h.ids, bus.SubscribeFunc(events.TypeProductionSiteOutOfStock, h.onProductionSiteOutOfStock))
	return h
}

// Uninstall passes every id this handle holds to bus.Unsubscribe. The event
// bus's Unsubscribe only removes subscribers added with Subscribe, not
// SubscribeFunc handlers, so the hooks stay registered and this call has no
// effect; it is kept for symmetry with Install.
func (h *Hooks) Uninstall(bus *events.EventBus) {
	for _, id := range h.ids {
		bus.Unsubscribe(id)
	}
}

func (h *Hooks) onFieldPossessionChanged(ev events.Event) {
	e, ok := ev.(*events.FieldPossessionChangedEvent)
	if !ok {
		return
	}
	if e.PlayerID != h.engine.playerID {
		if e.PreviousOwner == h.engine.playerID {
			h.engine.fields.RemoveField(e.Pos)
		}
		return
	}
	h.engine.fields.AddField(e.Pos)
}

func (h *Hooks) onImmovableGained(ev events.Event) {
	e, ok := ev.(*events.ImmovableGainedEvent)
	if !ok || e.PlayerID != h.engine.playerID {
		return
	}
	if e.Kind == "flag" {
		h.engine.flags[FlagID(e.SiteID)] = struct{}{}
		return
	}
	if e.Kind != "building" {
		return
	}
	bo, ok := h.engine.obs.BuildingByName(e.Building)
	if !ok {
		return
	}
	switch bo.Type {
	case BuildingProductionSite, BuildingMine:
		h.engine.obs.PutSite(&SiteObserver{
			Site:            SiteID(e.SiteID),
			Building:        bo.ID,
			BuiltTimeMS:     h.engine.nowMS,
			UnoccupiedTillMS: h.engine.nowMS,
		})
	case BuildingMilitarySite:
		h.engine.obs.PutMilitarySite(&MilitarySiteObserver{
			Site:     SiteID(e.SiteID),
			Building: bo.ID,
			Pos:      e.Pos,
		})
	}
	bo.CntBuilt++
	if bo.CntUnderConstruction > 0 {
		bo.CntUnderConstruction--
	}
}

func (h *Hooks) onImmovableLost(ev events.Event) {
	e, ok := ev.(*events.ImmovableLostEvent)
	if !ok || e.PlayerID != h.engine.playerID {
		return
	}
	if e.Kind == "flag" {
		delete(h.engine.flags, FlagID(e.SiteID))
		return
	}
	if e.Kind != "building" {
		return
	}
	bo, ok := h.engine.obs.BuildingByName(e.Building)
	if !ok {
		return
	}
	if bo.CntBuilt > 0 {
		bo.CntBuilt--
	}
	h.engine.obs.DeleteSite(SiteID(e.SiteID))
	h.engine.obs.DeleteMilitarySite(SiteID(e.SiteID))
	h.engine.blocked.Unblock(e.Pos)
}

func (h *Hooks) onProductionSiteOutOfStock(ev events.Event) {
	e, ok := ev.(*events.ProductionSiteOutOfStockEvent)
	if !ok || e.PlayerID != h.engine.playerID {
		return
	}
	so, ok := h.engine.obs.Site(SiteID(e.SiteID))
	if !ok {
		return
	}
	so.NoResourcesCount++
	so.StatsZero = true
}
