package web

import (
	"errors"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	embedded "statserver"
	"statserver/internal/config"
	"statserver/internal/domain"
	"statserver/internal/service"
	"statserver/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Server struct {
	playerService *service.PlayerService
	app           *fiber.App
	cfg           config.Server
	log           *logrus.Entry
}

func New(ps *service.PlayerService, cfg config.Server, l *logrus.Logger) (*Server, error) {
	server := Server{
		playerService: ps,
		cfg:           cfg,
		log:           l.WithField("from", "web"),
	}

	fsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(fsFS), ".html")
	engine.Reload(cfg.Debug)
	engine.Debug(cfg.Debug)

	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: server.handleError,
	})
	app.Use(server.logRequests)

	app.Get(webpath.Home, server.handleMain)

	app.Get(webpath.ApiPlayers, server.handleSearchPlayers)
	app.Post(webpath.ApiPlayers, server.handleCreatePlayer)
	app.Get(webpath.ApiPlayerByID, server.handleGetPlayer)
	app.Put(webpath.ApiPlayerByID, server.handleUpdatePlayer)
	app.Delete(webpath.ApiPlayerByID, server.handleDeletePlayer)
	app.Get(webpath.ApiCompare, server.handleCompare)
	app.Get(webpath.ApiSeasons, server.handleSeasons)
	app.Get(webpath.ApiHealth, server.handleHealth)

	server.app = app
	return &server, nil
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) logRequests(ctx *fiber.Ctx) error {
	requestID := uuid.NewString()
	ctx.Set("X-Request-Id", requestID)
	start := time.Now()
	err := ctx.Next()
	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"method":     ctx.Method(),
		"path":       ctx.Path(),
		"status":     ctx.Response().StatusCode(),
		"duration":   time.Since(start).String(),
	}).Info("request")
	return err
}

func (s *Server) handleError(ctx *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	switch {
	case errors.Is(err, domain.ErrValidation):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   domain.ErrValidation.Error(),
			"details": errorMessages(err),
		})
	case errors.Is(err, domain.ErrPlayerNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": domain.ErrPlayerNotFound.Error(),
		})
	case errors.As(err, &fiberErr):
		return ctx.Status(fiberErr.Code).JSON(fiber.Map{
			"error": fiberErr.Message,
		})
	default:
		s.log.WithError(err).Error("internal error")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}
}

func (s *Server) handleMain(ctx *fiber.Ctx) error {
	players, err := s.playerService.SearchPlayers(ctx.Context(), domain.Filter{})
	if err != nil {
		return err
	}
	return ctx.Render("index", newData("NBA Stat Server").
		With("Players", convertPlayersResponse(players)),
		"layouts/main")
}

func (s *Server) handleSearchPlayers(ctx *fiber.Ctx) error {
	filter, err := parseSearchFilter(ctx)
	if err != nil {
		return err
	}
	players, err := s.playerService.SearchPlayers(ctx.Context(), filter)
	if err != nil {
		return err
	}
	return ctx.JSON(convertPlayersResponse(players))
}

func (s *Server) handleCreatePlayer(ctx *fiber.Ctx) error {
	var req createPlayer
	if err := ctx.BodyParser(&req); err != nil {
		return errors.Join(domain.ErrValidation, err)
	}
	if err := req.Validate(); err != nil {
		return errors.Join(domain.ErrValidation, err)
	}
	created, err := s.playerService.CreatePlayer(ctx.Context(), req.convertToDomainPlayer())
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(convertPlayerResponse(created))
}

func (s *Server) handleGetPlayer(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return err
	}
	player, err := s.playerService.GetPlayer(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(convertPlayerResponse(player))
}

func (s *Server) handleUpdatePlayer(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return err
	}
	var req updatePlayer
	if err := ctx.BodyParser(&req); err != nil {
		return errors.Join(domain.ErrValidation, err)
	}
	if err := req.Validate(); err != nil {
		return errors.Join(domain.ErrValidation, err)
	}
	updated, err := s.playerService.UpdatePlayer(ctx.Context(), id, req.convertToDomainPatch())
	if err != nil {
		return err
	}
	return ctx.JSON(convertPlayerResponse(updated))
}

func (s *Server) handleDeletePlayer(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return err
	}
	if err := s.playerService.DeletePlayer(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleCompare(ctx *fiber.Ctx) error {
	idA, err := strconv.ParseInt(ctx.Query("a"), 10, 64)
	if err != nil {
		return errors.Join(domain.ErrValidation, errors.New("a must be a player id"))
	}
	idB, err := strconv.ParseInt(ctx.Query("b"), 10, 64)
	if err != nil {
		return errors.Join(domain.ErrValidation, errors.New("b must be a player id"))
	}
	comparison, err := s.playerService.Compare(ctx.Context(), idA, idB)
	if err != nil {
		return err
	}
	return ctx.JSON(convertComparisonResponse(comparison))
}

func (s *Server) handleSeasons(ctx *fiber.Ctx) error {
	seasons, err := s.playerService.Seasons(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(seasons)
}

func (s *Server) handleHealth(ctx *fiber.Ctx) error {
	if err := s.playerService.Health(ctx.Context()); err != nil {
		s.log.WithError(err).Error("health check failed")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "unhealthy",
		})
	}
	return ctx.JSON(fiber.Map{"status": "healthy"})
}
