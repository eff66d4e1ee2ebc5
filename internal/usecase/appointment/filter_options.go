package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/oficina-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/oficina-scheduler/internal/dto"
)

// ======================================================
// FILTER OPTIONS (barra lateral)
// ======================================================

type GetFilterOptions struct {
	repo  domain.Repository
	prefs ModeSource
}

func NewGetFilterOptions(repo domain.Repository, prefs ModeSource) *GetFilterOptions {
	return &GetFilterOptions{repo: repo, prefs: modeOrLight(prefs)}
}

// Execute lists only stored statuses: "late" is derived and cannot be
// filtered on.
func (uc *GetFilterOptions) Execute(ctx context.Context) (*dto.FilterOptionsDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p := presenter{repo: uc.repo, mode: uc.prefs.Mode()}

	statuses := make([]dto.StatusOptionDTO, 0, len(domain.Statuses()))
	for _, s := range domain.Statuses() {
		statuses = append(statuses, p.statusOption(s))
	}

	branches := uc.repo.GetBranches()
	bs := make([]dto.BranchDTO, 0, len(branches))
	for _, b := range branches {
		bs = append(bs, branchDTO(b))
	}

	return &dto.FilterOptionsDTO{
		Statuses: statuses,
		Branches: bs,
		Services: uc.repo.ServiceNames(),
	}, nil
}

// ======================================================
// STATUSES (legenda)
// ======================================================

type ListStatuses struct {
	prefs ModeSource
}

func NewListStatuses(prefs ModeSource) *ListStatuses {
	return &ListStatuses{prefs: modeOrLight(prefs)}
}

// Execute returns the legend: every stored status plus the derived late one.
func (uc *ListStatuses) Execute(ctx context.Context) ([]dto.StatusOptionDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p := presenter{mode: uc.prefs.Mode()}

	all := append(domain.Statuses(), domain.StatusLate)
	out := make([]dto.StatusOptionDTO, 0, len(all))
	for _, s := range all {
		out = append(out, p.statusOption(s))
	}
	return out, nil
}

// ======================================================
// BRANCHES
// ======================================================

type ListBranches struct {
	repo domain.Repository
}

func NewListBranches(repo domain.Repository) *ListBranches {
	return &ListBranches{repo: repo}
}

func (uc *ListBranches) Execute(ctx context.Context) ([]dto.BranchDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	branches := uc.repo.GetBranches()
	out := make([]dto.BranchDTO, 0, len(branches))
	for _, b := range branches {
		out = append(out, branchDTO(b))
	}
	return out, nil
}
