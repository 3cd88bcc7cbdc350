package program

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gzclp/pkg"
)

// Handler serves the static program shape: which roles lift which tier
// on which day, and the rep schemes per tier and stage. Public, it
// carries no user state.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

type TierAssignment struct {
	Role    Role         `json:"role"`
	Tier    Tier         `json:"tier"`
	Schemes [3]RepScheme `json:"schemes"`
}

type DayResponse struct {
	Day         Day              `json:"day"`
	Assignments []TierAssignment `json:"assignments"`
}

type DaysResponse struct {
	Days []DayResponse `json:"days"`
}

func dayResponse(day Day) DayResponse {
	resp := DayResponse{Day: day}
	// stable role order for a readable payload
	for _, role := range []Role{RoleSquat, RoleBench, RoleOHP, RoleDeadlift} {
		tier, ok := TierFor(role, day)
		if !ok {
			continue
		}
		resp.Assignments = append(resp.Assignments, TierAssignment{
			Role:    role,
			Tier:    tier,
			Schemes: [3]RepScheme{SchemeFor(tier, 0), SchemeFor(tier, 1), SchemeFor(tier, 2)},
		})
	}
	resp.Assignments = append(resp.Assignments, TierAssignment{
		Role:    RoleT3,
		Tier:    TierT3,
		Schemes: [3]RepScheme{SchemeFor(TierT3, 0), SchemeFor(TierT3, 1), SchemeFor(TierT3, 2)},
	})
	return resp
}

func (h *Handler) HandleListDays(w http.ResponseWriter, _ *http.Request) {
	resp := DaysResponse{}
	for day := Day1; day <= Day4; day++ {
		resp.Days = append(resp.Days, dayResponse(day))
	}
	writeJSON(w, resp)
}

func (h *Handler) HandleGetDay(w http.ResponseWriter, r *http.Request) {
	dayParam := mux.Vars(r)["day"]
	dayNum, err := strconv.Atoi(dayParam)
	if err != nil || !Day(dayNum).Valid() {
		http.Error(w, fmt.Sprintf("invalid program day %q", dayParam), http.StatusBadRequest)
		return
	}
	writeJSON(w, dayResponse(Day(dayNum)))
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	resp, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("marshal program response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resp, http.StatusOK)
}
