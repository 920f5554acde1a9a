package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/JonMunkholm/nftmeta/internal/core"
	"github.com/JonMunkholm/nftmeta/internal/logging"
)

// APIVersion is reported by the index route.
const APIVersion = "1.0.0"

// Response text is part of the public contract; existing clients match on it.
const (
	serviceMessage = "API de NFTs MavisRoads GameFi"

	errNFTNotFound       = "NFT não encontrada"
	errPowerCubeNotFound = "Power Cube não encontrado"
	errRouteNotFound     = "Rota não encontrada"

	msgInvalidID         = "ID '%s' não é válido ou não existe"
	msgOutOfRange        = "ID '%s' deve ser um número entre %d e %d"
	msgMetadataNotFound  = "Metadados para ID '%s' não foram encontrados no arquivo CSV"
	msgRouteDoesNotExist = "A rota solicitada não existe"
)

// AvailableRoutes is returned by the fallback handler.
var AvailableRoutes = []string{"/", "/nft/:id", "/nft/medium/:id", "/collection/powercube/:id", "/ids"}

// ServiceDescriptor is the body of GET /.
type ServiceDescriptor struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// IDListResponse is the body of GET /ids.
type IDListResponse struct {
	ValidIDs []string `json:"validIds"`
	Count    int      `json:"count"`
}

// handleIndex describes the service and its main endpoints.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, ServiceDescriptor{
		Message: serviceMessage,
		Version: APIVersion,
		Endpoints: map[string]string{
			"GET /nft/:id":                  "Retorna dados da NFT pelo ID",
			"GET /nft/medium/:id":           "Retorna dados da NFT Medium pelo ID",
			"GET /collection/powercube/:id": fmt.Sprintf("Retorna metadados do Power Cube pelo ID (%s)", core.PowerCubeRange),
		},
	})
}

// handleListIDs returns the current valid id list. Useful for debugging the ids file.
func (s *Server) handleListIDs(w http.ResponseWriter, r *http.Request) {
	ids := s.ids.Load(r.Context())
	writeJSON(w, r, http.StatusOK, IDListResponse{
		ValidIDs: ids,
		Count:    len(ids),
	})
}

func (s *Server) handleMiniLand(w http.ResponseWriter, r *http.Request) {
	s.serveLand(w, r, core.MiniLand())
}

func (s *Server) handleMediumLand(w http.ResponseWriter, r *http.Request) {
	s.serveLand(w, r, core.MediumLand())
}

// serveLand answers with record when the id is listed in the ids file.
// Rejections include the full id list to help whoever is debugging the mint.
func (s *Server) serveLand(w http.ResponseWriter, r *http.Request, record core.MetadataRecord) {
	ctx := r.Context()
	id := urlParam(r, "id")

	if !s.ids.IsValid(ctx, id) {
		respondError(w, r, http.StatusNotFound, ErrorResponse{
			Error:   errNFTNotFound,
			Message: fmt.Sprintf(msgInvalidID, id),
			Details: ValidIDsDetails{ValidIDs: s.ids.Load(ctx)},
		})
		return
	}

	writeJSON(w, r, http.StatusOK, record)
}

// handlePowerCube serves a Power Cube record from the metadata CSV.
func (s *Server) handlePowerCube(w http.ResponseWriter, r *http.Request) {
	id := urlParam(r, "id")

	record, err := s.metadata.PowerCube(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, record)

	case errors.Is(err, core.ErrTokenOutOfRange):
		respondError(w, r, http.StatusNotFound, ErrorResponse{
			Error:   errPowerCubeNotFound,
			Message: fmt.Sprintf(msgOutOfRange, id, core.PowerCubeMinID, core.PowerCubeMaxID),
			Details: ValidRangeDetails{ValidRange: core.PowerCubeRange},
		})

	default:
		if !errors.Is(err, core.ErrMetadataNotFound) {
			logging.FromContext(r.Context()).Error("power cube lookup failed", "id", id, "error", err)
		}
		respondError(w, r, http.StatusNotFound, ErrorResponse{
			Error:   errPowerCubeNotFound,
			Message: fmt.Sprintf(msgMetadataNotFound, id),
		})
	}
}

// handleNotFound is the fallback for unknown routes and methods.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusNotFound, ErrorResponse{
		Error:   errRouteNotFound,
		Message: msgRouteDoesNotExist,
		Details: AvailableRoutesDetails{AvailableRoutes: AvailableRoutes},
	})
}

// urlParam returns the decoded value of a route parameter. chi matches
// against RawPath when it is set, so only then is the value still escaped.
func urlParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v
	}
	if decoded, err := url.PathUnescape(v); err == nil {
		return decoded
	}
	return v
}
