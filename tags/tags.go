package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Attack = donburi.NewTag().SetName("Attack")
	Scene  = donburi.NewTag().SetName("Scene")
)

// Resolv tags for overlap queries
const (
	ResolvCharacter = "character"
	ResolvPlayer    = "Player"
	ResolvEnemy     = "Enemy"
	ResolvHitbox    = "hitbox"
)
