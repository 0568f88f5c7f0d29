package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/pellet-run/parameter"
)

// UpgradeKind identifies a purchasable upgrade
type UpgradeKind uint8

const (
	UpgradeSpeed UpgradeKind = iota
	UpgradeLife
	UpgradeMultiplier
)

// Upgrade is one catalogue entry as shown on the between-level screen
type Upgrade struct {
	Kind UpgradeKind
	Name string
	Cost int
}

// Catalogue returns the fixed upgrade offer
func Catalogue() []Upgrade {
	return []Upgrade{
		{Kind: UpgradeSpeed, Name: "Faster Step", Cost: parameter.UpgradeSpeedCost},
		{Kind: UpgradeLife, Name: "Extra Life", Cost: parameter.UpgradeLifeCost},
		{Kind: UpgradeMultiplier, Name: "Double Multiplier", Cost: parameter.UpgradeMultiplierCost},
	}
}

// CanAfford reports whether the current score covers the upgrade
func (w *World) CanAfford(u Upgrade) bool {
	return w.state.Score >= u.Cost
}

// Purchase buys an upgrade during the between-level screen. The cost is
// deducted from the score. A speed upgrade at the step floor is refused
// without charge.
func (w *World) Purchase(u Upgrade) bool {
	if w.state.Phase != PhaseUpgrading {
		return false
	}
	if !w.CanAfford(u) {
		return false
	}
	if u.Kind == UpgradeSpeed && w.state.BaseSpeed <= parameter.PlayerMinSpeed {
		return false
	}

	w.state.Score -= u.Cost
	switch u.Kind {
	case UpgradeSpeed:
		w.state.BaseSpeed--
	case UpgradeLife:
		w.state.Lives++
	case UpgradeMultiplier:
		w.state.Multiplier *= 2
	}

	w.log.WithFields(logrus.Fields{
		"upgrade": u.Name,
		"cost":    u.Cost,
		"score":   w.state.Score,
	}).Info("upgrade purchased")
	return true
}
