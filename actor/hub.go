package actor

import (
	"github.com/milk9111/sanity/ability"
	"github.com/milk9111/sanity/component"
)

// HubVisitedKey marks that the hub has been entered before.
const HubVisitedKey = "HUB_VISITED"

// HubRules adjusts the player on entering and leaving the hub scene.
type HubRules struct {
	FirstVisit  int
	ReturnBonus int
	Store       component.Persister
}

func DefaultHubRules(store component.Persister) HubRules {
	return HubRules{FirstVisit: 50, ReturnBonus: 30, Store: store}
}

// Enter sets the resource on the first visit and tops it up afterwards.
// Abilities are gated off while in the hub.
func (h HubRules) Enter(c *Controller) {
	if c == nil {
		return
	}
	if h.Store == nil || h.Store.GetInt(HubVisitedKey, 0) != 1 {
		c.Resource.Set(h.FirstVisit)
		if h.Store != nil {
			h.Store.SetInt(HubVisitedKey, 1)
		}
	} else {
		c.Resource.Restore(h.ReturnBonus)
	}
	c.Abilities.Cancel(c.body)
	c.Abilities.SetGates(ability.NoGates())
}

// Leave restores the actor's configured gates.
func (h HubRules) Leave(c *Controller) {
	if c == nil {
		return
	}
	c.Abilities.SetGates(c.cfg.Gates)
}
