package routes

import "github.com/gofiber/fiber/v3"

func RegisterV1(r fiber.Router, reg *Registry) {
	if r == nil || reg == nil {
		return
	}

	if reg.Limiter != nil {
		r.Use("/resumes/parse", reg.Limiter)
		r.Use("/resumes/upload", reg.Limiter)
		r.Use("/match", reg.Limiter)
	}

	if reg.Resumes != nil {
		reg.Resumes.RegisterRoutes(r)
	}
	if reg.Jobs != nil {
		reg.Jobs.RegisterRoutes(r)
	}
	if reg.Match != nil {
		reg.Match.RegisterRoutes(r)
	}
	if reg.Applications != nil {
		reg.Applications.RegisterRoutes(r)
	}
}
