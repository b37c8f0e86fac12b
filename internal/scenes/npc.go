package scenes

import (
	"fmt"

	"chosenoffset.com/homestead/internal/core/gamestate"
	"chosenoffset.com/homestead/internal/dialogue"
	"chosenoffset.com/homestead/internal/interaction"
)

// activate runs the behavior of an interactable the player pressed interact
// on. Doors were already handled by the resolver.
func (b *base) activate(target interaction.Entity) {
	switch target.Kind {
	case interaction.KindDoorHome, interaction.KindDoorExit, interaction.KindDoorShop, interaction.KindDoorFarm:
	case interaction.KindNPCElder:
		b.talkToElder(target)
	case interaction.KindNPCShopkeeper:
		b.talkToShopkeeper()
	case interaction.KindBedSleep:
		b.Dialogue.StartChoice("Sleep until morning?",
			dialogue.Option{Label: "Sleep", Then: dialogue.Sleep()},
			dialogue.Option{Label: "Not yet"},
		)
	default:
		if target.Kind.IsSign() {
			b.readSign(target)
			return
		}
		b.log.Warn("interactable has no behavior", "kind", target.Kind)
	}
}

func (b *base) readSign(target interaction.Entity) {
	if len(target.Lines) == 0 {
		b.Dialogue.Say(target.Prompt)
		return
	}
	b.Dialogue.Say(target.Lines...)
}

// talkToElder walks the quest: the first talk starts it, and once a crop has
// been sold the next talk pays the reward.
func (b *base) talkToElder(target interaction.Entity) {
	gs := b.ctx.State
	q := b.ctx.tuning().Quest
	switch {
	case !gs.Flag(gamestate.FlagQuestStarted):
		b.Dialogue.StartDialogue([]string{
			"Elder: Welcome to the valley, farmer.",
			"Elder: The old farm north of town has good soil. Grow something and sell it at the shop.",
			"Elder: Come back to me once you've sold your first crop.",
		}, dialogue.StartQuest(), dialogue.None)
	case !gs.Flag(gamestate.FlagQuestCompleted) && gs.Flag(gamestate.FlagCropSold):
		b.Dialogue.StartDialogue([]string{
			"Elder: I heard you sold your first crop!",
			fmt.Sprintf("Elder: Take these %d coins. The valley thanks you.", q.RewardCoins),
		}, dialogue.CompleteQuest(q.RewardCoins, q.RewardXP), dialogue.None)
	case !gs.Flag(gamestate.FlagQuestCompleted):
		b.Dialogue.Say(
			"Elder: Till the soil with T, plant seeds with P, and harvest with Space.",
			"Elder: Seeds are sold at the shop.",
		)
	case len(target.Lines) > 0:
		b.Dialogue.Say(target.Lines...)
	default:
		b.Dialogue.Say("Elder: The valley is lucky to have you.")
	}
}

// talkToShopkeeper offers the sell loop while crops are held, otherwise the
// seed purchase (and the boots while they are not owned). The shop only
// trades during opening hours.
func (b *base) talkToShopkeeper() {
	gs := b.ctx.State
	t := b.ctx.tuning()
	if !b.ctx.Clock.IsShopOpen() {
		b.Dialogue.Say(lineShopClosed)
		return
	}
	if gs.HasItem(t.Farming.CropItem, 1) {
		newEffects(b.ctx, b.Dialogue).offerSell()
		return
	}
	if !gs.Upgrade(gamestate.UpgradeBoots) {
		b.Dialogue.StartChoice(lineWhatToBuy,
			dialogue.Option{Label: fmt.Sprintf("Seeds (%dc)", t.Shop.SeedPrice), Then: dialogue.BuySeeds(1, t.Shop.SeedPrice)},
			dialogue.Option{Label: fmt.Sprintf("Boots (%dc)", t.Shop.BootsPrice), Then: dialogue.BuyBoots(t.Shop.BootsPrice)},
		)
		return
	}
	b.Dialogue.StartDialogue(
		[]string{fmt.Sprintf(lineSeedOffer, t.Shop.SeedPrice)},
		dialogue.BuySeeds(1, t.Shop.SeedPrice), dialogue.None,
	)
}
