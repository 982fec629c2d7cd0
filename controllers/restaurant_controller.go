// controllers/restaurant_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/chloeyeo/wswg-backend/entity"
	"github.com/chloeyeo/wswg-backend/pkg/resp"
	"github.com/chloeyeo/wswg-backend/repository"
	"github.com/chloeyeo/wswg-backend/services"
	"github.com/chloeyeo/wswg-backend/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// radius for "restaurants around me", meters
	nearbyMaxDistanceMeters = 1500
	// radius for the exact-location lookup, meters
	exactMatchDistanceMeters = 1
)

type RestaurantController struct {
	Service *services.RestaurantService
}

func NewRestaurantController(s *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Service: s}
}

// GET /restaurant/:cateId
// Query params: limit, skip, search, foodtype, filters[metropolitan], filters[city]
func (ctl *RestaurantController) Search(c *gin.Context) {
	mateType, ok := entity.MateTypeLabel(c.Param("cateId"))
	if !ok {
		resp.BadRequest(c, "Invalid cateId parameter")
		return
	}

	filters := c.QueryMap("filters")
	q := repository.RestaurantSearch{
		MateType:     mateType,
		FoodType:     c.Query("foodtype"),
		Metropolitan: filters["metropolitan"],
		City:         filters["city"],
		Search:       c.Query("search"),
		Limit:        utils.QueryInt64(c, "limit", 0),
		Skip:         utils.QueryInt64(c, "skip", 0),
	}

	restaurants, hasMore, err := ctl.Service.Search(c.Request.Context(), q)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurants, "hasMore": hasMore})
}

// GET /restaurant/:cateId/:id
// Scoped by id AND category: a restaurant outside the category reads as
// missing. Found-nothing responds 200 with a null restaurant, not 404.
func (ctl *RestaurantController) Detail(c *gin.Context) {
	mateType, ok := entity.MateTypeLabel(c.Param("cateId"))
	if !ok {
		resp.BadRequest(c, "Invalid cateId parameter")
		return
	}
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "Invalid restaurant id")
		return
	}

	restaurant, err := ctl.Service.Get(c.Request.Context(), id, mateType)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// POST /restaurant/:cateId/:id/view
// The increment is scoped by id only — deliberately looser than Detail.
func (ctl *RestaurantController) View(c *gin.Context) {
	if _, ok := entity.MateTypeLabel(c.Param("cateId")); !ok {
		resp.BadRequest(c, "Invalid cateId parameter")
		return
	}
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "Invalid restaurant id")
		return
	}

	restaurant, err := ctl.Service.IncrementViews(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

type locationRequest struct {
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	CateID string  `json:"cateId"`
}

// POST /restaurant/location
// Query params: filters[metropolitan], filters[city], filters[district]
func (ctl *RestaurantController) Location(c *gin.Context) {
	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	mateType, ok := entity.MateTypeLabel(req.CateID)
	if !ok {
		resp.BadRequest(c, "Invalid cateId parameter")
		return
	}

	filters := c.QueryMap("filters")
	q := repository.NearbyQuery{
		Longitude:    req.Lon,
		Latitude:     req.Lat,
		MaxDistance:  nearbyMaxDistanceMeters,
		MateType:     mateType,
		Metropolitan: filters["metropolitan"],
		City:         filters["city"],
		District:     filters["district"],
	}

	restaurants, err := ctl.Service.Nearby(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "데이터 조회 중 오류 발생"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurants})
}

// GET /restaurant/
// Exact-location lookup: at most one restaurant within one meter of the
// given point. Query params: latitude, longitude.
func (ctl *RestaurantController) Nearest(c *gin.Context) {
	latitude, latErr := strconv.ParseFloat(c.Query("latitude"), 64)
	longitude, lonErr := strconv.ParseFloat(c.Query("longitude"), 64)
	if latErr != nil || lonErr != nil {
		resp.BadRequest(c, "Invalid coordinates")
		return
	}

	q := repository.NearbyQuery{
		Longitude:   longitude,
		Latitude:    latitude,
		MaxDistance: exactMatchDistanceMeters,
		Limit:       1,
	}

	restaurants, err := ctl.Service.Nearby(c.Request.Context(), q)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurants})
}
