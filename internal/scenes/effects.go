package scenes

import (
	"fmt"

	"chosenoffset.com/homestead/internal/core/gamestate"
	"chosenoffset.com/homestead/internal/dialogue"
)

// Shop lines.
const (
	lineShopClosed   = "Shopkeeper: Sorry, we're closed. Please come back during the day."
	lineSellCrops    = "Sell crops: +%d coins each. Space: one  |  Q: all  |  Esc: cancel"
	lineThanksCrops  = "Shopkeeper: Thanks for the crops!"
	lineNoCrops      = "Shopkeeper: You have no crops."
	lineSeedOffer    = "Shopkeeper: Seeds cost %d coins. Press Space to confirm."
	lineSeedsBought  = "Shopkeeper: Here you go, one bag of seeds!"
	lineNoCoins      = "Shopkeeper: Sorry, you don't have enough coins."
	lineBootsBought  = "Shopkeeper: These boots will have you running in no time. Hold Shift to run."
	lineWhatToBuy    = "Shopkeeper: What can I get you?"
	lineSleptMorning = "You wake up feeling refreshed."
)

// effects applies dialogue continuations to the session state. Follow-up
// lines are opened on the same dialogue engine that ran the continuation.
type effects struct {
	ctx      *Context
	dialogue *dialogue.Engine
}

func newEffects(ctx *Context, d *dialogue.Engine) *effects {
	return &effects{ctx: ctx, dialogue: d}
}

// Dispatch implements dialogue.Dispatcher.
func (e *effects) Dispatch(c dialogue.Continuation) {
	gs := e.ctx.State
	switch c.Op {
	case dialogue.OpReward:
		e.reward(c.Coins, c.XP)
	case dialogue.OpStartQuest:
		gs.SetFlag(gamestate.FlagQuestStarted, true)
		e.ctx.notify("Quest started: Sell your first crop")
	case dialogue.OpCompleteQuest:
		if gs.Flag(gamestate.FlagQuestCompleted) {
			return
		}
		gs.SetFlag(gamestate.FlagQuestCompleted, true)
		e.ctx.notify("Quest completed!")
		e.reward(c.Coins, c.XP)
	case dialogue.OpBuySeeds:
		e.buySeeds(max(c.Qty, 1), c.Coins)
	case dialogue.OpSellCropOne:
		e.sellOne()
	case dialogue.OpSellCropAll:
		e.sellAll()
	case dialogue.OpBuyBoots:
		e.buyBoots(c.Coins)
	case dialogue.OpSleep:
		e.ctx.Clock.SetMorning()
		gs.Heal()
		e.ctx.notify(lineSleptMorning)
	case dialogue.OpNotify:
		e.ctx.notify(c.Text)
	case dialogue.OpNone:
	default:
		e.ctx.logger().Warn("unhandled continuation", "op", c.Op.String())
	}
}

func (e *effects) reward(coins, xp int) {
	gs := e.ctx.State
	if coins > 0 {
		gs.AddCoins(coins)
		e.ctx.notify(fmt.Sprintf("+%d Coins", coins))
	}
	if xp > 0 {
		e.ctx.notify(fmt.Sprintf("+%d XP", xp))
		if levels := gs.AddXP(xp); levels > 0 {
			e.ctx.notify(fmt.Sprintf("Level up! Now level %d", gs.Level))
		}
	}
}

func (e *effects) buySeeds(qty, price int) {
	gs := e.ctx.State
	seed := e.ctx.tuning().Farming.SeedItem
	if !gs.SpendCoins(price) {
		e.dialogue.Say(lineNoCoins)
		return
	}
	gs.AddItem(seed, qty)
	e.ctx.notify(fmt.Sprintf("-%d Coins", price))
	e.ctx.notify(fmt.Sprintf("+%d %s", qty, gs.DisplayName(seed)))
	e.dialogue.Say(lineSeedsBought)
}

// sellOne sells a single crop and reopens the sell prompt while crops remain.
func (e *effects) sellOne() {
	gs := e.ctx.State
	crop := e.ctx.tuning().Farming.CropItem
	price := e.ctx.tuning().Shop.CropPrice
	if !gs.RemoveItem(crop, 1) {
		e.dialogue.Say(lineNoCrops)
		return
	}
	gs.AddCoins(price)
	gs.SetFlag(gamestate.FlagCropSold, true)
	e.ctx.notify("-1 " + gs.DisplayName(crop))
	e.ctx.notify(fmt.Sprintf("+%d Coins", price))
	if gs.HasItem(crop, 1) {
		e.offerSell()
		return
	}
	e.dialogue.Say(lineNoCrops)
}

func (e *effects) sellAll() {
	gs := e.ctx.State
	crop := e.ctx.tuning().Farming.CropItem
	have := gs.ItemCount(crop)
	if have <= 0 || !gs.RemoveItem(crop, have) {
		e.dialogue.Say(lineNoCrops)
		return
	}
	coins := have * e.ctx.tuning().Shop.CropPrice
	gs.AddCoins(coins)
	gs.SetFlag(gamestate.FlagCropSold, true)
	e.ctx.notify(fmt.Sprintf("-%d %s(s)", have, gs.DisplayName(crop)))
	e.ctx.notify(fmt.Sprintf("+%d Coins", coins))
	e.dialogue.Say(lineThanksCrops)
}

func (e *effects) buyBoots(price int) {
	gs := e.ctx.State
	if gs.Upgrade(gamestate.UpgradeBoots) {
		return
	}
	if !gs.SpendCoins(price) {
		e.dialogue.Say(lineNoCoins)
		return
	}
	gs.SetUpgrade(gamestate.UpgradeBoots, true)
	e.ctx.notify(fmt.Sprintf("-%d Coins", price))
	e.ctx.notify("+1 Boots")
	e.dialogue.Say(lineBootsBought)
}

// offerSell opens the sell loop: interact sells one, alt sells all.
func (e *effects) offerSell() {
	line := fmt.Sprintf(lineSellCrops, e.ctx.tuning().Shop.CropPrice)
	e.dialogue.StartDialogue([]string{line}, dialogue.SellCropOne(), dialogue.SellCropAll())
}
