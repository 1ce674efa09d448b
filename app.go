package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"net"
	"os"
	"path"
	"strconv"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"github.com/ElDuderino/QuoteGenerator/imageproc"
	"github.com/ElDuderino/QuoteGenerator/quotes"
)

func must[T any](value T, err error) T {
	if err != nil {
		log.Fatalln("fatal error:", err)
	}
	return value
}

const baseImagePath = "img"

var baseImageIds []string = make([]string, 0)
var listenHost string = os.Getenv("LISTEN_HOST")
var listenPort string = os.Getenv("LISTEN_PORT")

func init() {
	for _, entry := range must(os.ReadDir(baseImagePath)) {
		if entry.Type().IsRegular() {
			baseImageIds = append(baseImageIds, entry.Name())
		}
	}
	if len(baseImageIds) == 0 {
		log.Fatalln("no base images in", baseImagePath)
	}
	if listenPort == "" {
		listenPort = "8080"
	}
}

func main() {
	source := quotes.FromEnv()
	router := gin.Default()
	router.GET("/quote", func(c *gin.Context) {
		id := c.Query("id")
		if id == "" {
			id = baseImageIds[rand.Int()%len(baseImageIds)]
		}
		log.Println("using base image with id", id)
		img, err := getBaseImage(id)
		if errors.Is(err, os.ErrNotExist) {
			log.Println("base image 404:", err)
			c.AbortWithStatus(404)
			return
		} else if err != nil {
			c.AbortWithError(500, err)
			return
		}

		text := c.Query("text")
		if text == "" {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 20*time.Second)
			defer cancel()
			text, err = source.Quote(ctx)
			if err != nil {
				c.AbortWithError(500, err)
				return
			}
		}

		scale, err := strconv.ParseFloat(c.Query("scale"), 64)
		if err != nil {
			scale = imageproc.DefaultScale
		}

		out, err := imageproc.Overlay(img, text, scale)
		if err != nil {
			c.AbortWithError(500, err)
			return
		}
		c.Data(200, mimetype.Detect(out).String(), out)
	})
	router.Run(net.JoinHostPort(listenHost, listenPort))
}

func getBaseImage(id string) ([]byte, error) {
	sanitizedId := path.Join("/", id)
	return os.ReadFile(path.Join(baseImagePath, sanitizedId))
}
