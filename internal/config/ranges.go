package config

import (
	"github.com/charmbracelet/log"

	"github.com/pokercats/holdem/internal/ai"
	"github.com/pokercats/holdem/internal/game"
)

// BuildRanges turns the configured charts into the agent's range tables.
// Malformed entries (unknown position codes, unparseable hand strings) are
// logged and skipped; loading continues with partial ranges.
func BuildRanges(cfg *Config, logger *log.Logger) *ai.Ranges {
	logger = logger.WithPrefix("config")
	ranges := ai.NewRanges()

	for _, entry := range cfg.Ranges {
		position, err := game.ParsePosition(entry.Position)
		if err != nil {
			logger.Warn("skipping range entry with unknown position", "position", entry.Position)
			continue
		}

		for _, hand := range entry.OpenRaise {
			class, err := ai.ParseHandClass(hand)
			if err != nil {
				logger.Warn("skipping malformed hand string", "position", entry.Position, "hand", hand, "err", err)
				continue
			}
			ranges.AddOpenRaise(position, class)
		}

		addVs := func(chart string, vsRanges []VsRange, add func(pos, vs game.Position, hc ai.HandClass)) {
			for _, vsRange := range vsRanges {
				vs, err := game.ParsePosition(vsRange.VsPosition)
				if err != nil {
					logger.Warn("skipping range entry with unknown aggressor position",
						"chart", chart, "position", entry.Position, "vs", vsRange.VsPosition)
					continue
				}
				for _, hand := range vsRange.Range {
					class, err := ai.ParseHandClass(hand)
					if err != nil {
						logger.Warn("skipping malformed hand string",
							"chart", chart, "position", entry.Position, "vs", vsRange.VsPosition, "hand", hand, "err", err)
						continue
					}
					add(position, vs, class)
				}
			}
		}

		addVs("cold_call", entry.ColdCall, ranges.AddColdCall)
		addVs("three_bet", entry.ThreeBet, ranges.AddThreeBet)
		addVs("call_three_bet", entry.CallThreeBet, ranges.AddCallThreeBet)
		addVs("four_bet", entry.FourBet, ranges.AddFourBet)
	}
	return ranges
}

// Default returns a playable 6-max configuration: 10/20 blinds, hundred
// big-blind stacks and a conservative chart set.
func Default() *Config {
	pairsDown := func(lowest string) []string {
		all := []string{"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66", "55", "44", "33", "22"}
		for i, hand := range all {
			if hand == lowest {
				return all[:i+1]
			}
		}
		return all
	}

	mp2Open := append(pairsDown("99"), "AKs", "AQs", "AJs", "KQs", "AKo", "AQo")
	mp3Open := append(pairsDown("88"), "AKs", "AQs", "AJs", "ATs", "KQs", "KJs", "AKo", "AQo", "AJo")
	coOpen := append(pairsDown("66"),
		"AKs", "AQs", "AJs", "ATs", "A9s", "KQs", "KJs", "KTs", "QJs", "QTs", "JTs",
		"AKo", "AQo", "AJo", "ATo", "KQo")
	buOpen := append(pairsDown("22"),
		"AKs", "AQs", "AJs", "ATs", "A9s", "A8s", "A7s", "A6s", "A5s", "A4s", "A3s", "A2s",
		"KQs", "KJs", "KTs", "K9s", "QJs", "QTs", "Q9s", "JTs", "J9s", "T9s", "98s", "87s", "76s", "65s",
		"AKo", "AQo", "AJo", "ATo", "A9o", "KQo", "KJo", "QJo", "JTo")
	sbOpen := append(pairsDown("55"),
		"AKs", "AQs", "AJs", "ATs", "A9s", "A5s", "KQs", "KJs", "KTs", "QJs", "JTs",
		"AKo", "AQo", "AJo", "KQo")

	flatVsEarly := []string{"QQ", "JJ", "TT", "99", "88", "AQs", "AJs", "KQs", "JTs"}
	threeBetVsEarly := []string{"AA", "KK", "AKs", "AKo", "A5s"}
	flatVsLate := []string{"JJ", "TT", "99", "88", "77", "AQs", "AJs", "ATs", "KQs", "QJs", "JTs", "AQo"}
	threeBetVsLate := []string{"AA", "KK", "QQ", "AKs", "AKo", "A5s", "A4s"}
	callThreeBet := []string{"QQ", "JJ", "TT", "AQs", "AKs", "AKo"}
	fourBet := []string{"AA", "KK", "AKs"}

	vs := func(positions []string, hands []string) []VsRange {
		ranges := make([]VsRange, len(positions))
		for i, p := range positions {
			ranges[i] = VsRange{VsPosition: p, Range: hands}
		}
		return ranges
	}

	return &Config{
		Table: TableSettings{
			BigBlind:           20,
			Ante:               0,
			StartingStack:      2000,
			Seats:              6,
			TurnTimeoutSeconds: 30,
			AIDelaySeconds:     1,
		},
		Ranges: []PositionRanges{
			{
				Position:     "MP2",
				OpenRaise:    mp2Open,
				CallThreeBet: vs([]string{"MP3", "CO", "BU", "SB", "BB"}, callThreeBet),
				FourBet:      vs([]string{"MP3", "CO", "BU", "SB", "BB"}, fourBet),
			},
			{
				Position:     "MP3",
				OpenRaise:    mp3Open,
				ColdCall:     vs([]string{"MP2"}, flatVsEarly),
				ThreeBet:     vs([]string{"MP2"}, threeBetVsEarly),
				CallThreeBet: vs([]string{"CO", "BU", "SB", "BB"}, callThreeBet),
				FourBet:      vs([]string{"CO", "BU", "SB", "BB"}, fourBet),
			},
			{
				Position:     "CO",
				OpenRaise:    coOpen,
				ColdCall:     vs([]string{"MP2", "MP3"}, flatVsEarly),
				ThreeBet:     vs([]string{"MP2", "MP3"}, threeBetVsEarly),
				CallThreeBet: vs([]string{"BU", "SB", "BB"}, callThreeBet),
				FourBet:      vs([]string{"BU", "SB", "BB"}, fourBet),
			},
			{
				Position:     "BU",
				OpenRaise:    buOpen,
				ColdCall:     vs([]string{"MP2", "MP3", "CO"}, flatVsLate),
				ThreeBet:     vs([]string{"MP2", "MP3", "CO"}, threeBetVsLate),
				CallThreeBet: vs([]string{"SB", "BB"}, callThreeBet),
				FourBet:      vs([]string{"SB", "BB"}, fourBet),
			},
			{
				Position:     "SB",
				OpenRaise:    sbOpen,
				ColdCall:     vs([]string{"MP2", "MP3", "CO", "BU"}, flatVsEarly),
				ThreeBet:     vs([]string{"MP2", "MP3", "CO", "BU"}, threeBetVsLate),
				CallThreeBet: vs([]string{"BB"}, callThreeBet),
				FourBet:      vs([]string{"BB"}, fourBet),
			},
			{
				Position: "BB",
				ColdCall: vs([]string{"MP2", "MP3", "CO", "BU", "SB"}, flatVsLate),
				ThreeBet: vs([]string{"MP2", "MP3", "CO", "BU", "SB"}, threeBetVsLate),
			},
		},
	}
}
