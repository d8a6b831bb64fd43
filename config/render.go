package config

import "image/color"

// RenderConfig contains the placeholder sprite palette
type RenderConfig struct {
	TileColors map[string]color.RGBA
	// VariantShade darkens each autotile variant by this much per step
	VariantShade float64

	CloudColor      color.RGBA
	LanternColor    color.RGBA
	SparrowColor    color.RGBA
	ProjectileColor color.RGBA
	DartColor       color.RGBA
	SparkColor      color.RGBA
	ShieldColor     color.RGBA
	BlessingColor   color.RGBA
	SmokeColor      color.RGBA
	PickupColors    map[string]color.RGBA
	HitboxColor     color.RGBA
}

var Render RenderConfig

func init() {
	Render = RenderConfig{
		TileColors: map[string]color.RGBA{
			"grass":          Matcha,
			"stone":          Umenezumi,
			"sand":           Haizakura,
			"pagoda":         Suoh,
			"cursed_pagoda":  Kikyou,
			"half_tile":      Kurotobi,
			"platform":       Hiwada,
			"spikes":         White,
			"flora":          Momo,
			"spawners":       Syojyohi,
			"pickups":        Kohaku,
			"crumble_blocks": Hiwada,
		},
		VariantShade:    0.06,
		CloudColor:      color.RGBA{R: 243, G: 243, B: 243, A: 160},
		LanternColor:    Syojyohi,
		SparrowColor:    Kurotobi,
		ProjectileColor: Kohaku,
		DartColor:       Matcha,
		SparkColor:      White,
		ShieldColor:     color.RGBA{R: 162, G: 215, B: 221, A: 120},
		BlessingColor:   color.RGBA{R: 254, G: 223, B: 225, A: 140},
		SmokeColor:      color.RGBA{R: 158, G: 122, B: 122, A: 130},
		PickupColors: map[string]color.RGBA{
			"ramen":           Kohaku,
			"sushi":           Akane,
			"spirit_blessing": Mizu,
		},
		HitboxColor: color.RGBA{R: 232, G: 48, B: 21, A: 200},
	}
}
