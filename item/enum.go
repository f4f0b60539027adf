package item

// Category 物品类别
type Category string

const (
	CategoryWeapon     Category = "weapon"
	CategoryTech       Category = "tech"
	CategoryArtifact   Category = "artifact"
	CategoryConsumable Category = "consumable"
	CategoryWearable   Category = "wearable"
)

// Rarity 稀有度
type Rarity string

const (
	RarityCommon Rarity = "common"
	RarityRare   Rarity = "rare"
	RarityEpic   Rarity = "epic"
)

// Multiplier returns the fair-price multiplier for the rarity tier.
func (r Rarity) Multiplier() float64 {
	switch r {
	case RarityRare:
		return 2.5
	case RarityEpic:
		return 5.0
	default:
		return 1.0
	}
}

// Condition 物品状态
type Condition string

const (
	ConditionNew     Condition = "new"
	ConditionUsed    Condition = "used"
	ConditionDamaged Condition = "damaged"
)

// Multiplier returns the fair-price multiplier for the wear level.
func (c Condition) Multiplier() float64 {
	switch c {
	case ConditionUsed:
		return 0.7
	case ConditionDamaged:
		return 0.4
	default:
		return 1.0
	}
}

// WearableSlot is where a wearable item is equipped.
type WearableSlot string

const (
	SlotHead      WearableSlot = "head"
	SlotBody      WearableSlot = "body"
	SlotAccessory WearableSlot = "accessory"
)

// ValidRarity reports whether r is a known rarity tier.
func ValidRarity(r Rarity) bool {
	return r == RarityCommon || r == RarityRare || r == RarityEpic
}

// ValidCondition reports whether c is a known wear level.
func ValidCondition(c Condition) bool {
	return c == ConditionNew || c == ConditionUsed || c == ConditionDamaged
}
