package handlers

import "github.com/gofiber/fiber/v2"

// ReferralHandler holds the referral program endpoints.
type ReferralHandler struct{}

func NewReferralHandler() *ReferralHandler { return &ReferralHandler{} }

// Claim acknowledges a referral claim.
// @Summary Claim a referral
// @Tags    referrals
// @Produce json
// @Success 200 {object} map[string]string
// @Router  /referrals/claim [post]
func (h *ReferralHandler) Claim(c *fiber.Ctx) error {
	// TODO: persist claims once the referral store lands.
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "claimed"})
}
