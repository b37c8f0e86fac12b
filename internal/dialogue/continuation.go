package dialogue

import "fmt"

// Op selects what a continuation does once a dialogue or choice resolves.
type Op int

const (
	OpNone Op = iota
	OpReward
	OpStartQuest
	OpCompleteQuest
	OpBuySeeds
	OpSellCropOne
	OpSellCropAll
	OpBuyBoots
	OpSleep
	OpNotify
)

var opNames = map[Op]string{
	OpNone:          "none",
	OpReward:        "reward",
	OpStartQuest:    "start_quest",
	OpCompleteQuest: "complete_quest",
	OpBuySeeds:      "buy_seeds",
	OpSellCropOne:   "sell_crop_one",
	OpSellCropAll:   "sell_crop_all",
	OpBuyBoots:      "buy_boots",
	OpSleep:         "sleep",
	OpNotify:        "notify",
}

func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Continuation is a deferred game action attached to a dialogue or a choice
// option. The zero value does nothing.
type Continuation struct {
	Op    Op
	Coins int
	XP    int
	Qty   int
	Text  string
}

// None is the no-op continuation.
var None = Continuation{}

// IsNone reports whether the continuation does nothing.
func (c Continuation) IsNone() bool { return c.Op == OpNone }

func (c Continuation) String() string {
	switch c.Op {
	case OpReward, OpCompleteQuest:
		return fmt.Sprintf("%s(coins=%d, xp=%d)", c.Op, c.Coins, c.XP)
	case OpBuySeeds, OpBuyBoots:
		return fmt.Sprintf("%s(qty=%d, price=%d)", c.Op, c.Qty, c.Coins)
	case OpNotify:
		return fmt.Sprintf("%s(%q)", c.Op, c.Text)
	default:
		return c.Op.String()
	}
}

// Reward grants coins and experience.
func Reward(coins, xp int) Continuation {
	return Continuation{Op: OpReward, Coins: coins, XP: xp}
}

// StartQuest marks the quest as started.
func StartQuest() Continuation { return Continuation{Op: OpStartQuest} }

// CompleteQuest marks the quest as completed and pays out.
func CompleteQuest(coins, xp int) Continuation {
	return Continuation{Op: OpCompleteQuest, Coins: coins, XP: xp}
}

// BuySeeds buys qty seed bags at price coins each.
func BuySeeds(qty, price int) Continuation {
	return Continuation{Op: OpBuySeeds, Qty: qty, Coins: price}
}

// SellCropOne sells a single crop.
func SellCropOne() Continuation { return Continuation{Op: OpSellCropOne} }

// SellCropAll sells every crop held.
func SellCropAll() Continuation { return Continuation{Op: OpSellCropAll} }

// BuyBoots buys the running boots upgrade.
func BuyBoots(price int) Continuation {
	return Continuation{Op: OpBuyBoots, Qty: 1, Coins: price}
}

// Sleep skips to the next morning.
func Sleep() Continuation { return Continuation{Op: OpSleep} }

// Notify shows a transient notification.
func Notify(text string) Continuation {
	return Continuation{Op: OpNotify, Text: text}
}

// Dispatcher executes continuations. Each scene installs its own.
type Dispatcher interface {
	Dispatch(c Continuation)
}

// DispatcherFunc adapts a function to the Dispatcher interface.
type DispatcherFunc func(Continuation)

// Dispatch implements Dispatcher.
func (f DispatcherFunc) Dispatch(c Continuation) { f(c) }
