package bargain

// Mode 谈判方向：BUY 表示玩家买入（商人卖出），SELL 相反
type Mode byte

const (
	ModeNone Mode = 0
	ModeBuy  Mode = 1
	ModeSell Mode = 2
)

var ModeDictionary = map[Mode]string{
	ModeNone: "NONE",
	ModeBuy:  "BUY",
	ModeSell: "SELL",
}

func (m Mode) String() string { return ModeDictionary[m] }

// Action 每轮裁决结果类型
type Action byte

const (
	ActionNone    Action = 0
	ActionAccept  Action = 1
	ActionCounter Action = 2
	ActionReject  Action = 3
)

var ActionDictionary = map[Action]string{
	ActionNone:    "NONE",
	ActionAccept:  "ACCEPT",
	ActionCounter: "COUNTER",
	ActionReject:  "REJECT",
}

func (a Action) String() string { return ActionDictionary[a] }

// Round limits per difficulty.
const (
	DefaultMaxRounds  = 6
	HardModeMaxRounds = 4
)

// Mood and trust bounds.
const (
	MoodMin  = -100.0
	MoodMax  = 100.0
	TrustMin = 0.0
	TrustMax = 100.0
)
