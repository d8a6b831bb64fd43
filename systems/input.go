package systems

import (
	"strings"

	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls the keyboard and gamepads into the Input singleton.
// It runs before every system that reads actions.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	keyboardUsed, gamepadUsed, activeGamepadID := pollBindings(input, gamepadIDs)

	// The left stick doubles as the d-pad: down slides, up navigates menus.
	stick := readStick(gamepadIDs)
	if stick.left {
		input.Current[cfg.ActionMoveLeft] = true
		input.Current[cfg.ActionMenuLeft] = true
	}
	if stick.right {
		input.Current[cfg.ActionMoveRight] = true
		input.Current[cfg.ActionMenuRight] = true
	}
	if stick.up {
		input.Current[cfg.ActionMenuUp] = true
	}
	if stick.down {
		input.Current[cfg.ActionSlide] = true
		input.Current[cfg.ActionMenuDown] = true
	}
	if stick.any() {
		gamepadUsed = true
		activeGamepadID = stick.gamepad
	}

	// Update last input method - gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// pollBindings marks every action whose key or button is held.
func pollBindings(input *components.InputData, gamepads []ebiten.GamepadID) (keyboard, gamepad bool, active ebiten.GamepadID) {
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboard = true
			}
		}
		for _, gpID := range gamepads {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepad = true
					active = gpID
				}
			}
		}
	}
	return keyboard, gamepad, active
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	method := components.InputXbox
	for _, hint := range []string{"ps4", "ps5", "playstation", "dualshock", "dualsense"} {
		if strings.Contains(name, hint) {
			method = components.InputPlayStation
			break
		}
	}

	controllerTypeCache[gpID] = method
	return method
}

type stickState struct {
	left, right, up, down bool
	gamepad               ebiten.GamepadID
}

func (s stickState) any() bool {
	return s.left || s.right || s.up || s.down
}

// readStick reads the left analog stick of every gamepad past the deadzone.
func readStick(gamepads []ebiten.GamepadID) stickState {
	var s stickState
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		before := s.any()
		s.left = s.left || horizontal < -deadzone
		s.right = s.right || horizontal > deadzone
		s.up = s.up || vertical < -deadzone
		s.down = s.down || vertical > deadzone
		if s.any() && !before {
			s.gamepad = gpID
		}
	}
	return s
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		// Zero-value InputData is correct (all bools false)
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
