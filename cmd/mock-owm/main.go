// Command mock-owm serves canned OpenWeatherMap responses for local runs.
// Point OPENWEATHERMAP_API_BASE_URL at http://localhost:8090/data/2.5.
package main

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type condition struct {
	Icon string `json:"icon"`
}

type mainBlock struct {
	Temp     float64 `json:"temp"`
	Humidity float64 `json:"humidity,omitempty"`
}

type currentResponse struct {
	Main    mainBlock   `json:"main"`
	Wind    windBlock   `json:"wind"`
	Name    string      `json:"name"`
	Weather []condition `json:"weather"`
}

type windBlock struct {
	Speed float64 `json:"speed"`
}

type forecastItem struct {
	Dt      int64       `json:"dt"`
	Main    mainBlock   `json:"main"`
	Weather []condition `json:"weather"`
}

type forecastResponse struct {
	List []forecastItem `json:"list"`
}

type errorResponse struct {
	Cod     string `json:"cod"`
	Message string `json:"message"`
}

const forecastSteps = 40

var weatherData = map[string]currentResponse{
	"london": {
		Main:    mainBlock{Temp: 15.0, Humidity: 76},
		Wind:    windBlock{Speed: 4.1},
		Name:    "London",
		Weather: []condition{{Icon: "02d"}},
	},
	"paris": {
		Main:    mainBlock{Temp: 18.0, Humidity: 68},
		Wind:    windBlock{Speed: 2.6},
		Name:    "Paris",
		Weather: []condition{{Icon: "01d"}},
	},
	"berlin": {
		Main:    mainBlock{Temp: 12.0, Humidity: 82},
		Wind:    windBlock{Speed: 5.7},
		Name:    "Berlin",
		Weather: []condition{{Icon: "04d"}},
	},
}

// coordinates resolve to a fixed place
var coordinateData = currentResponse{
	Main:    mainBlock{Temp: 21.2, Humidity: 55},
	Wind:    windBlock{Speed: 1.5},
	Name:    "Greenwich",
	Weather: []condition{{Icon: "03d"}},
}

func main() {
	gin.SetMode(gin.ReleaseMode)
	r := newRouter(time.Now)

	addr := ":8090"
	if port := os.Getenv("MOCK_OWM_PORT"); port != "" {
		addr = ":" + port
	}

	slog.Info("Mock OpenWeatherMap server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

func newRouter(now func() time.Time) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/data/2.5")
	api.GET("/weather", func(c *gin.Context) {
		current, ok := resolve(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, current)
	})
	api.GET("/forecast", func(c *gin.Context) {
		current, ok := resolve(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, buildForecast(current, now()))
	})

	return r
}

// resolve answers the error cases and returns the place the query names
func resolve(c *gin.Context) (currentResponse, bool) {
	if c.Query("appid") == "" {
		c.JSON(http.StatusUnauthorized, errorResponse{Cod: "401", Message: "Invalid API key."})
		return currentResponse{}, false
	}

	if c.Query("lat") != "" && c.Query("lon") != "" {
		return coordinateData, true
	}

	city := strings.ToLower(strings.TrimSpace(c.Query("q")))
	switch city {
	case "":
		c.JSON(http.StatusBadRequest, errorResponse{Cod: "400", Message: "Nothing to geocode"})
		return currentResponse{}, false
	case "servererror":
		c.JSON(http.StatusInternalServerError, errorResponse{Cod: "500", Message: "Internal server error"})
		return currentResponse{}, false
	case "timeout":
		c.Header("Connection", "close")
		c.AbortWithStatus(http.StatusRequestTimeout)
		return currentResponse{}, false
	}

	current, exists := weatherData[city]
	if !exists {
		c.JSON(http.StatusNotFound, errorResponse{Cod: "404", Message: "city not found"})
		return currentResponse{}, false
	}
	return current, true
}

// buildForecast emits five days of 3-hour steps drifting around the current temperature
func buildForecast(current currentResponse, now time.Time) forecastResponse {
	start := now.UTC().Truncate(3 * time.Hour).Add(3 * time.Hour)
	icon := "01d"
	if len(current.Weather) > 0 {
		icon = current.Weather[0].Icon
	}

	list := make([]forecastItem, 0, forecastSteps)
	for i := 0; i < forecastSteps; i++ {
		list = append(list, forecastItem{
			Dt:      start.Add(time.Duration(i) * 3 * time.Hour).Unix(),
			Main:    mainBlock{Temp: current.Main.Temp + float64(i%8) - 3},
			Weather: []condition{{Icon: icon}},
		})
	}
	return forecastResponse{List: list}
}
