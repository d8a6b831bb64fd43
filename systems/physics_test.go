package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"

	"github.com/automoto/kagerun/components"
	"github.com/automoto/kagerun/shared/gamemath"
	"github.com/automoto/kagerun/shared/tilemap"
)

func floorMap(typ string, row int, cols ...int) *tilemap.Tilemap {
	m := tilemap.New(16)
	for _, c := range cols {
		m.SetTile(tilemap.GridKey{X: c, Y: row}, tilemap.Tile{Type: typ})
	}
	return m
}

func testBody(x, y float64) *components.BodyData {
	return &components.BodyData{Kind: "test", Pos: math.Vec2{X: x, Y: y}, W: 8, H: 15}
}

func TestMoveBodyLandsOnFloor(t *testing.T) {
	grid := floorMap(tilemap.TypeStone, 2, 0, 1, 2, 3)
	body := testBody(10, 16)
	body.Vel.Y = 5

	MoveBody(body, grid, math.Vec2{}, false, nil)

	assert.True(t, body.Collisions.Down)
	assert.Equal(t, 17.0, body.Pos.Y)
	assert.InDelta(t, 0.1, body.Vel.Y, 1e-9, "gravity applies after landing")
}

func TestMoveBodyGravityIsCapped(t *testing.T) {
	body := testBody(0, 0)
	body.Vel.Y = 4.95

	MoveBody(body, tilemap.New(16), math.Vec2{}, false, nil)

	assert.Equal(t, 5.0, body.Vel.Y)
	assert.False(t, body.Collisions.Down)
}

func TestMoveBodyFallSpeedConverges(t *testing.T) {
	body := testBody(0, 0)
	grid := tilemap.New(16)

	for i := 0; i < 60; i++ {
		MoveBody(body, grid, math.Vec2{}, false, nil)
		assert.LessOrEqual(t, body.Vel.Y, 5.0, "tick %d", i)
	}
	assert.Equal(t, 5.0, body.Vel.Y)
}

func TestMoveBodyStopsAtWall(t *testing.T) {
	grid := floorMap(tilemap.TypeStone, 0, 2)
	body := testBody(20, 0)
	body.Vel.X = 1

	MoveBody(body, grid, math.Vec2{X: 4}, false, nil)

	assert.True(t, body.Collisions.Right)
	assert.Equal(t, 24.0, body.Pos.X)
	assert.Equal(t, 1.0, body.Vel.X, "horizontal velocity is kept")

	body = testBody(49, 0)
	MoveBody(body, grid, math.Vec2{X: -2}, false, nil)
	assert.True(t, body.Collisions.Left)
	assert.Equal(t, 48.0, body.Pos.X)
}

func TestMoveBodyHitsCeiling(t *testing.T) {
	grid := floorMap(tilemap.TypeStone, 0, 0)
	body := testBody(2, 17)
	body.Vel.Y = -3

	MoveBody(body, grid, math.Vec2{}, false, nil)

	assert.True(t, body.Collisions.Up)
	assert.Equal(t, 16.0, body.Pos.Y)
	assert.InDelta(t, 0.1, body.Vel.Y, 1e-9)
}

func TestMoveBodyHazardsOnlyBlockWhenAsked(t *testing.T) {
	grid := floorMap(tilemap.TypeSpikes, 0, 2)

	walker := testBody(20, 0)
	MoveBody(walker, grid, math.Vec2{X: 4}, false, nil)
	assert.False(t, walker.Collisions.Right)
	assert.Equal(t, 24.0, walker.Pos.X)

	enemy := testBody(20, 0)
	enemy.SolidHazards = true
	MoveBody(enemy, grid, math.Vec2{X: 6}, false, nil)
	assert.True(t, enemy.Collisions.Right)
	assert.Equal(t, 24.0, enemy.Pos.X)
}

func TestMoveBodyPlatforms(t *testing.T) {
	tests := []struct {
		name     string
		y, vy    float64
		ignore   bool
		wantDown bool
		wantY    float64
	}{
		{name: "lands from above", y: 16, vy: 2, wantDown: true, wantY: 17},
		{name: "passes up from inside", y: 20, vy: 1, wantDown: false, wantY: 21},
		{name: "drop through ignores landing", y: 16, vy: 2, ignore: true, wantDown: false, wantY: 18.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := floorMap(tilemap.TypePlatform, 2, 0, 1)
			body := testBody(4, tt.y)
			body.Vel.Y = tt.vy

			MoveBody(body, grid, math.Vec2{}, tt.ignore, nil)

			assert.Equal(t, tt.wantDown, body.Collisions.Down)
			assert.InDelta(t, tt.wantY, body.Pos.Y, 1e-9)
		})
	}
}

func TestMoveBodyFallThroughNudgeHasMinimum(t *testing.T) {
	grid := floorMap(tilemap.TypePlatform, 2, 0)
	body := testBody(4, 17)
	body.Vel.Y = 0.1

	MoveBody(body, grid, math.Vec2{}, true, nil)

	// overlap 0.1 gives a nudge of max(0.05, 0.1)
	assert.InDelta(t, 17.2, body.Pos.Y, 1e-9)
}

func TestMoveBodyExtraSolids(t *testing.T) {
	block := gamemath.NewRect(0, 32, 16, 16)
	body := testBody(4, 16)
	body.Vel.Y = 3

	MoveBody(body, tilemap.New(16), math.Vec2{}, false, []gamemath.Rect{block})

	assert.True(t, body.Collisions.Down)
	assert.Equal(t, 17.0, body.Pos.Y)
}
