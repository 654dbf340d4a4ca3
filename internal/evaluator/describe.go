package evaluator

import "fmt"

// Describe renders a HandInfo as the short phrase shown in hand hints and
// showdown summaries, e.g. "Pair of Aces" or "Kings full of Nines".
func Describe(info HandInfo) string {
	switch info.Type {
	case HighCard:
		return fmt.Sprintf("High card %s", info.MainRank.Name())
	case Pair:
		return fmt.Sprintf("Pair of %s", info.MainRank.PluralName())
	case TwoPairs:
		return fmt.Sprintf("Two Pairs, %s and %s", info.MainRank.PluralName(), info.SecondRank.PluralName())
	case ThreeOfAKind:
		return fmt.Sprintf("Three of a Kind, %s", info.MainRank.PluralName())
	case Straight:
		return fmt.Sprintf("Straight, %s high", info.MainRank.Name())
	case Flush:
		return fmt.Sprintf("Flush, %s high", info.MainRank.Name())
	case FullHouse:
		return fmt.Sprintf("%s full of %s", info.MainRank.PluralName(), info.SecondRank.PluralName())
	case FourOfAKind:
		return fmt.Sprintf("Four of a Kind, %s", info.MainRank.PluralName())
	case StraightFlush:
		return fmt.Sprintf("Straight Flush, %s high", info.MainRank.Name())
	case RoyalFlush:
		return "Royal Flush!"
	default:
		return ""
	}
}
