package app

import (
	"github.com/Faultbox/spinlight/internal/config"
	"github.com/Faultbox/spinlight/internal/engine/camera"
	"github.com/Faultbox/spinlight/internal/engine/frame"
	"github.com/Faultbox/spinlight/internal/engine/lighting"
	"github.com/Faultbox/spinlight/pkg/math"
)

func cameraFromConfig(c config.CameraConfig) *camera.Fixed {
	return &camera.Fixed{
		Eye:    math.Vec3FromArray(c.Eye),
		Target: math.Vec3FromArray(c.Target),
		Up:     math.Vec3FromArray(c.Up),
		FOVY:   math.Radians(c.FOVDegrees),
		Near:   c.Near,
		Far:    c.Far,
	}
}

func lightingFromConfig(c config.LightingConfig) lighting.Phong {
	return lighting.Phong{
		Light: lighting.PointLight{
			Position: math.Vec3FromArray(c.Position),
			Color:    math.Vec3FromArray(c.Color),
		},
		Ambient:   math.Vec3FromArray(c.Ambient),
		Shininess: c.Shininess,
	}
}

func updaterFromConfig(c config.AnimationConfig) *frame.Updater {
	return frame.NewUpdater(math.Radians(c.DegreesPerFrame), math.Vec3FromArray(c.Axis))
}
