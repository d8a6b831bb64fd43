package systems

import (
	"log"
	"slices"

	cfg "github.com/automoto/kagerun/config"
	"github.com/automoto/kagerun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSession drives the level flow: screenshake decay, the exit
// transition once every enemy is dead, the death wipe and the level timer.
func UpdateSession(e *ecs.ECS) {
	session := GetOrCreateSession(e)
	level := GetOrCreateLevel(e)
	session.Tick++

	if session.Screenshake > 0 {
		session.Screenshake--
	}
	if session.Finished || !level.Loaded {
		return
	}

	if enemiesLeft(e) == 0 {
		if !session.Cleared {
			session.Cleared = true
			completeLevel(e)
		}
		session.Transition++
		if session.Transition > cfg.Session.AdvanceAfter {
			advanceLevel(e)
			return
		}
	}
	if session.Transition < 0 {
		session.Transition++
	}

	if session.Dead > 0 {
		session.Dead++
		if session.Dead >= cfg.Session.DeadWipeStart {
			session.Transition = min(cfg.Session.TransitionMax, session.Transition+1)
		}
		if session.Dead > cfg.Session.ReloadAfter {
			reloadLevel(e)
			return
		}
	}

	session.Timer++
}

func enemiesLeft(e *ecs.ECS) int {
	n := 0
	tags.Enemy.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

// completeLevel records the clear time, applies character unlocks and
// saves. It runs once per level, on the first tick of the exit transition.
func completeLevel(e *ecs.ECS) {
	session := GetOrCreateSession(e)
	if session.Save == nil {
		session.Save = NewSaveData()
	}
	save := session.Save

	seconds := session.Seconds()
	if best, ok := save.BestTimes[session.MapID]; !ok || seconds < best {
		save.BestTimes[session.MapID] = seconds
	}

	if name, ok := cfg.Characters.UnlockAt[session.Level]; ok && !slices.Contains(save.UnlockedCharacters, name) {
		save.UnlockedCharacters = append(save.UnlockedCharacters, name)
		ShowBanner(e, "Character Unlocked!")
		PlaySFX(e, cfg.SoundGong)
	}
	saveSession(session)
}

// advanceLevel loads the next map, or finishes the run after the last one.
func advanceLevel(e *ecs.ECS) {
	session := GetOrCreateSession(e)
	level := GetOrCreateLevel(e)
	if session.Level >= level.LastLevel() {
		session.Finished = true
		saveSession(session)
		return
	}

	next := session.Level + 1
	session.Level = next
	saveSession(session)
	if err := LoadLevel(e, next); err != nil {
		log.Printf("Warning: %v", err)
	}
}

func reloadLevel(e *ecs.ECS) {
	if err := LoadLevel(e, GetOrCreateSession(e).Level); err != nil {
		log.Printf("Warning: %v", err)
	}
}

// RestartLevel reloads the current level from the pause menu.
func RestartLevel(e *ecs.ECS) {
	reloadLevel(e)
}
