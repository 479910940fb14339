package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"academy-api/internal/media"
	"academy-api/internal/models"
	"academy-api/internal/query"
)

const tablePlayers = "pemain"

type playerForm struct {
	Nama         *string `json:"nama" form:"nama"`
	Posisi       *string `json:"posisi" form:"posisi"`
	TanggalLahir *string `json:"tanggal_lahir" form:"tanggal_lahir" binding:"omitempty,datetime=2006-01-02"`
	MinutesPlay  minutes `json:"minutes_play" form:"minutes_play"`
}

// GET /api/pemain?page&pageSize&nama&tanggal
func ListPlayers(players PlayerStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := query.ParsePage(c.Query("page"), c.Query("pageSize"))
		if err != nil {
			fail(c, err)
			return
		}

		env, err := players.List(c.Request.Context(), models.PlayerFilter{
			Nama:    c.Query("nama"),
			Tanggal: c.Query("tanggal"),
		}, p)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, env)
	}
}

func CreatePlayer(players PlayerStore, up media.Uploader, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form playerForm
		if err := bind(c, &form); err != nil {
			fail(c, err)
			return
		}
		nama, err := required("nama", form.Nama)
		if err != nil {
			fail(c, err)
			return
		}

		asset, err := uploadPhoto(c, up)
		if err != nil {
			fail(c, err)
			return
		}

		p, err := players.Create(c.Request.Context(), models.PlayerInput{
			Nama:         nama,
			Posisi:       optional(form.Posisi),
			TanggalLahir: optional(form.TanggalLahir),
			FotoURL:      photoURL(asset),
			MinutesPlay:  form.MinutesPlay.value,
		})
		if err != nil {
			discardPhoto(c, up, logger, asset)
			fail(c, err)
			return
		}

		audit(c, logger, "create", tablePlayers, p.ID)
		c.JSON(http.StatusCreated, p)
	}
}

// PUT /api/pemain/:id
// Fields missing from the body are left as they are.
func UpdatePlayer(players PlayerStore, up media.Uploader, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c)
		if err != nil {
			fail(c, err)
			return
		}
		var form playerForm
		if err := bind(c, &form); err != nil {
			fail(c, err)
			return
		}
		nama, err := notBlank("nama", form.Nama)
		if err != nil {
			fail(c, err)
			return
		}

		asset, err := uploadPhoto(c, up)
		if err != nil {
			fail(c, err)
			return
		}

		rows, err := players.Update(c.Request.Context(), id, models.PlayerPatch{
			Nama:         nama,
			Posisi:       trimmed(form.Posisi),
			TanggalLahir: trimmed(form.TanggalLahir),
			FotoURL:      photoURL(asset),
			MinutesPlay:  form.MinutesPlay.ptr(),
		})
		if err != nil || len(rows) == 0 {
			discardPhoto(c, up, logger, asset)
		}
		if err != nil {
			fail(c, err)
			return
		}

		audit(c, logger, "update", tablePlayers, id, "matched", len(rows))
		c.JSON(http.StatusOK, gin.H{
			"message": "Pemain berhasil diperbarui",
			"data":    rows,
		})
	}
}

func DeletePlayer(players PlayerStore, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c)
		if err != nil {
			fail(c, err)
			return
		}

		n, err := players.Delete(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}

		audit(c, logger, "delete", tablePlayers, id, "deleted", n)
		c.JSON(http.StatusOK, gin.H{"message": "Pemain berhasil dihapus"})
	}
}
