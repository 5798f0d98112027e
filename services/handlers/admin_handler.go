package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/guess-tone/tone_api/dto"
	"github.com/guess-tone/tone_api/shared"
)

type AdminHandler struct {
	gameSvc  GameServiceInterface
	authSvc  AuthServiceInterface
	mediaSvc MediaServiceInterface
}

func NewAdminHandler(gameSvc GameServiceInterface, authSvc AuthServiceInterface, mediaSvc MediaServiceInterface) *AdminHandler {
	return &AdminHandler{
		gameSvc:  gameSvc,
		authSvc:  authSvc,
		mediaSvc: mediaSvc,
	}
}

// @Summary Admin login
// @Description Exchange the admin password for a bearer token
// @Tags admin
// @Accept json
// @Produce json
// @Param loginRequest body dto.AdminLoginRequest true "Admin credentials"
// @Success 200 {object} shared.Response{data=dto.AdminLoginResponse}
// @Router /api/v1/admin/login [post]
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.ResponseBadRequest(c, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.authSvc.Login(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Login successful", resp)
}

// @Summary List games (Admin)
// @Description Every round unsanitized, newest first
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Success 200 {object} shared.Response{data=dto.GameListResponse}
// @Router /api/v1/admin/games [get]
func (h *AdminHandler) ListGames(c *fiber.Ctx) error {
	games, err := h.gameSvc.AdminListGames(c.UserContext())
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", dto.GameListResponse{Games: games})
}

// @Summary Create game (Admin)
// @Description Author a new round
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param createRequest body dto.CreateGameRequest true "Round definition"
// @Success 201 {object} shared.Response{data=dto.GameResponse}
// @Router /api/v1/admin/games [post]
func (h *AdminHandler) CreateGame(c *fiber.Ctx) error {
	var req dto.CreateGameRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.ResponseBadRequest(c, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	g, err := h.gameSvc.CreateGame(c.UserContext(), req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Created", dto.GameResponse{Game: *g})
}

// @Summary Get game (Admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param gameId path string true "Game ID"
// @Success 200 {object} shared.Response{data=dto.GameResponse}
// @Router /api/v1/admin/games/{gameId} [get]
func (h *AdminHandler) GetGame(c *fiber.Ctx) error {
	g, err := h.gameSvc.GetGame(c.UserContext(), c.Params("gameId"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", dto.GameResponse{Game: *g})
}

// @Summary Update game (Admin)
// @Description Full replace of a round's mutable fields
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param gameId path string true "Game ID"
// @Param updateRequest body dto.UpdateGameRequest true "Round definition"
// @Success 200 {object} shared.Response{data=dto.GameResponse}
// @Router /api/v1/admin/games/{gameId} [put]
func (h *AdminHandler) UpdateGame(c *fiber.Ctx) error {
	var req dto.UpdateGameRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.ResponseBadRequest(c, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	g, err := h.gameSvc.UpdateGame(c.UserContext(), c.Params("gameId"), req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", dto.GameResponse{Game: *g})
}

// @Summary Delete game (Admin)
// @Description Remove a round; its sessions get a TTL and age out
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param gameId path string true "Game ID"
// @Success 200 {object} shared.Response{data=nil}
// @Router /api/v1/admin/games/{gameId} [delete]
func (h *AdminHandler) DeleteGame(c *fiber.Ctx) error {
	if err := h.gameSvc.DeleteGame(c.UserContext(), c.Params("gameId")); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", nil)
}

// @Summary Upload hint image (Admin)
// @Description Store a hint image and attach its URL to the round
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param gameId path string true "Game ID"
// @Param image formData file true "Hint image (JPG, PNG, WEBP)"
// @Success 200 {object} shared.Response{data=string}
// @Router /api/v1/admin/games/{gameId}/image [post]
func (h *AdminHandler) UploadHintImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return shared.ResponseBadRequest(c, "image file is required")
	}

	url, err := h.mediaSvc.UploadHintImage(c.UserContext(), c.Params("gameId"), file)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", url)
}
