package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/daniilsolovey/article-publisher/internal/newsportal"
	"github.com/labstack/echo/v4"
)

type ListRequest struct {
	CategoryID *int `query:"categoryId"`
	Page       int  `query:"p"`
}

type ArticleHandler struct {
	manager *newsportal.Manager
	log     *slog.Logger
}

func NewArticleHandler(manager *newsportal.Manager, log *slog.Logger) *ArticleHandler {
	return &ArticleHandler{
		manager: manager,
		log:     log,
	}
}

func (h *ArticleHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, ErrorResponse{Error: message})
}

// handlePublishError maps engine errors to responses. Causes of publish
// failures are logged by the engine and never returned to the client.
func (h *ArticleHandler) handlePublishError(c echo.Context, scope newsportal.Scope, mode newsportal.Mode, err error) error {
	switch {
	case errors.Is(err, newsportal.ErrUnknownScope), errors.Is(err, newsportal.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "article not found"})
	}

	message := "internal error"
	if variant, verr := newsportal.LookupVariant(scope); verr == nil {
		message = variant.FailureMessage(mode)
	}

	if errors.Is(err, newsportal.ErrValidationFailed) {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:  message,
			Fields: newsportal.FieldErrors(err),
		})
	}

	return h.handleError(c, err, http.StatusInternalServerError, message)
}

// List handles GET /api/v1/:scope/articles
// @Summary List articles
// @Description Returns one page of the scope's articles sorted by publishDate DESC. Page size is fixed.
// @Tags articles
// @Produce json
// @Param scope path string true "news or blog"
// @Param categoryId query int false "Filter by category ID"
// @Param p query int false "Page number (default: 1)"
// @Success 200 {object} rest.ArticlePage
// @Failure 400,401,404,500 {object} rest.ErrorResponse
// @Router /api/v1/{scope}/articles [get]
func (h *ArticleHandler) List(c echo.Context) error {
	var req ListRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	scope := scopeParam(c)
	page, err := h.manager.ListArticles(c.Request().Context(), scope, req.CategoryID, req.Page)
	if errors.Is(err, newsportal.ErrUnknownScope) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown scope"})
	} else if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewArticlePage(page))
}

// Categories handles GET /api/v1/:scope/categories
// @Summary Get categories
// @Description Returns the categories of the scope ordered by name
// @Tags articles
// @Produce json
// @Param scope path string true "news or blog"
// @Success 200 {array} rest.Category
// @Failure 401,404,500 {object} rest.ErrorResponse
// @Router /api/v1/{scope}/categories [get]
func (h *ArticleHandler) Categories(c echo.Context) error {
	categories, err := h.manager.Categories(c.Request().Context(), scopeParam(c))
	if errors.Is(err, newsportal.ErrUnknownScope) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown scope"})
	} else if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewCategories(categories))
}

// ByID handles GET /api/v1/:scope/articles/:id
// @Summary Get article by ID
// @Description Returns a single article with its body text
// @Tags articles
// @Produce json
// @Param scope path string true "news or blog"
// @Param id path int true "Article ID"
// @Success 200 {object} rest.Article
// @Failure 400,401,404,500 {object} rest.ErrorResponse
// @Router /api/v1/{scope}/articles/{id} [get]
func (h *ArticleHandler) ByID(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	article, err := h.manager.ArticleByID(c.Request().Context(), scopeParam(c), id)
	if err != nil {
		return h.handlePublishError(c, scopeParam(c), newsportal.ModeEdit, err)
	}

	return c.JSON(http.StatusOK, NewArticle(*article))
}

// AddForm handles GET /api/v1/:scope/articles/form
// @Summary Get add form
// @Description Returns the ordered field list and default values for a new article
// @Tags forms
// @Produce json
// @Param scope path string true "news or blog"
// @Success 200 {object} rest.Form
// @Failure 401,404,500 {object} rest.ErrorResponse
// @Router /api/v1/{scope}/articles/form [get]
func (h *ArticleHandler) AddForm(c echo.Context) error {
	scope := scopeParam(c)
	form, err := h.manager.AddForm(c.Request().Context(), scope, actor(c))
	if err != nil {
		return h.handlePublishError(c, scope, newsportal.ModeAdd, err)
	}

	return c.JSON(http.StatusOK, NewForm(form, 0))
}

// EditForm handles GET /api/v1/:scope/articles/:id/form
// @Summary Get edit form
// @Description Returns the ordered field list pre-filled with the stored article
// @Tags forms
// @Produce json
// @Param scope path string true "news or blog"
// @Param id path int true "Article ID"
// @Success 200 {object} rest.Form
// @Failure 400,401,404,500 {object} rest.ErrorResponse
// @Router /api/v1/{scope}/articles/{id}/form [get]
func (h *ArticleHandler) EditForm(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	scope := scopeParam(c)
	form, err := h.manager.EditForm(c.Request().Context(), scope, id, actor(c))
	if err != nil {
		return h.handlePublishError(c, scope, newsportal.ModeEdit, err)
	}

	return c.JSON(http.StatusOK, NewForm(form, id))
}

// Add handles POST /api/v1/:scope/articles
// @Summary Add article
// @Description Validates and publishes a new article. The body is a flat JSON object of form values.
// @Tags articles
// @Accept json
// @Produce json
// @Param scope path string true "news or blog"
// @Param values body map[string]string true "Form values"
// @Success 201 {object} rest.Result
// @Failure 400,401,404,422,500 {object} rest.ErrorResponse
// @Router /api/v1/{scope}/articles [post]
func (h *ArticleHandler) Add(c echo.Context) error {
	values, err := bindValues(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	scope := scopeParam(c)
	article, err := h.manager.SubmitAdd(c.Request().Context(), scope, values, actor(c))
	if err != nil {
		return h.handlePublishError(c, scope, newsportal.ModeAdd, err)
	}

	return c.JSON(http.StatusCreated, h.result(scope, article, "added"))
}

// Edit handles PUT /api/v1/:scope/articles/:id
// @Summary Edit article
// @Description Overwrites the provided fields of an article and republishes it. Absent fields keep their value.
// @Tags articles
// @Accept json
// @Produce json
// @Param scope path string true "news or blog"
// @Param id path int true "Article ID"
// @Param values body map[string]string true "Form values"
// @Success 200 {object} rest.Result
// @Failure 400,401,404,422,500 {object} rest.ErrorResponse
// @Router /api/v1/{scope}/articles/{id} [put]
func (h *ArticleHandler) Edit(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	values, err := bindValues(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	scope := scopeParam(c)
	article, err := h.manager.SubmitEdit(c.Request().Context(), scope, id, values, actor(c))
	if err != nil {
		return h.handlePublishError(c, scope, newsportal.ModeEdit, err)
	}

	return c.JSON(http.StatusOK, h.result(scope, article, "updated"))
}

// Delete handles DELETE /api/v1/:scope/articles/:id
// @Summary Delete article
// @Description Deletes the article. Its stored body text is kept.
// @Tags articles
// @Produce json
// @Param scope path string true "news or blog"
// @Param id path int true "Article ID"
// @Success 200 {object} rest.Result
// @Failure 400,401,404,500 {object} rest.ErrorResponse
// @Router /api/v1/{scope}/articles/{id} [delete]
func (h *ArticleHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	scope := scopeParam(c)
	article, err := h.manager.DeleteArticle(c.Request().Context(), scope, id)
	if err != nil {
		return h.handlePublishError(c, scope, newsportal.ModeEdit, err)
	}

	return c.JSON(http.StatusOK, h.result(scope, article, "deleted"))
}

func (h *ArticleHandler) result(scope newsportal.Scope, article *newsportal.Article, action string) Result {
	variant, _ := newsportal.LookupVariant(scope)
	a := NewArticle(*article)

	return Result{
		Message: variant.SuccessMessage(article.Title, action),
		Article: &a,
	}
}

func bindValues(c echo.Context) (newsportal.Values, error) {
	raw := map[string]interface{}{}
	if err := (&echo.DefaultBinder{}).BindBody(c, &raw); err != nil {
		return nil, err
	}

	return NewValues(raw)
}

func scopeParam(c echo.Context) newsportal.Scope {
	return newsportal.Scope(c.Param("scope"))
}

func idParam(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}

func actor(c echo.Context) int {
	userID, _ := newsportal.ActorFromContext(c.Request().Context())
	return userID
}
