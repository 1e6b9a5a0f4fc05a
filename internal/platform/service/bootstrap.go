package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prajasetu/prajasetu/internal/platform/domain"
	"github.com/prajasetu/prajasetu/internal/platform/store"
	"github.com/prajasetu/prajasetu/pkg/cryptox"
	"github.com/prajasetu/prajasetu/pkg/idx"
	"github.com/prajasetu/prajasetu/pkg/slogx"
)

var ErrBootstrapConfig = errors.New("bootstrap admin mobile and password must be configured")

// BootstrapService seeds an empty database with the super admin account,
// the location directory, default settings and one starter invite per
// role so the first real members can register.
type BootstrapService struct {
	Store store.Store

	AdminName     string
	AdminMobile   string
	AdminPassword string
}

type seedDistrict struct {
	name   string
	nameTE string
}

var andhraDistricts = []seedDistrict{
	{"Anantapur", "అనంతపురం"},
	{"Chittoor", "చిత్తూరు"},
	{"East Godavari", "తూర్పు గోదావరి"},
	{"Guntur", "గుంటూరు"},
	{"Krishna", "కృష్ణా"},
	{"Kurnool", "కర్నూలు"},
	{"Nellore", "నెల్లూరు"},
	{"Prakasam", "ప్రకాశం"},
	{"Srikakulam", "శ్రీకాకుళం"},
	{"Visakhapatnam", "విశాఖపట్నం"},
	{"Vizianagaram", "విజయనగరం"},
	{"West Godavari", "పశ్చిమ గోదావరి"},
	{"YSR Kadapa", "వైఎస్ఆర్ కడప"},
}

var telanganaDistricts = []seedDistrict{
	{"Adilabad", "ఆదిలాబాద్"},
	{"Bhadradri Kothagudem", "భద్రాద్రి కొత్తగూడెం"},
	{"Hyderabad", "హైదరాబాద్"},
	{"Jagtial", "జగిత్యాల"},
	{"Jangaon", "జనగాం"},
	{"Jayashankar Bhupalpally", "జయశంకర్ భూపాలపల్లి"},
	{"Jogulamba Gadwal", "జోగులాంబ గద్వాల"},
	{"Kamareddy", "కామారెడ్డి"},
	{"Karimnagar", "కరీంనగర్"},
	{"Khammam", "ఖమ్మం"},
	{"Komaram Bheem Asifabad", "కొమరం భీం ఆసిఫాబాద్"},
	{"Mahabubnagar", "మహబూబ్ నగర్"},
	{"Mancherial", "మంచిర్యాల"},
	{"Medak", "మెదక్"},
	{"Medchal-Malkajgiri", "మేడ్చల్-మల్కాజిగిరి"},
	{"Mulugu", "ములుగు"},
	{"Nagarkurnool", "నాగర్‌కర్నూల్"},
	{"Nalgonda", "నల్గొండ"},
	{"Narayanpet", "నారాయణపేట"},
	{"Nirmal", "నిర్మల్"},
	{"Nizamabad", "నిజామాబాద్"},
	{"Peddapalli", "పెద్దపల్లి"},
	{"Rajanna Sircilla", "రాజన్న సిరిసిల్ల"},
	{"Rangareddy", "రంగారెడ్డి"},
	{"Sangareddy", "సంగారెడ్డి"},
	{"Siddipet", "సిద్దిపేట"},
	{"Suryapet", "సూర్యాపేట"},
	{"Vikarabad", "వికారాబాద్"},
	{"Wanaparthy", "వనపర్తి"},
	{"Warangal Rural", "వరంగల్ రూరల్"},
	{"Warangal Urban", "వరంగల్ అర్బన్"},
	{"Yadadri Bhuvanagiri", "యాదాద్రి భువనగిరి"},
}

// Run seeds missing data. It is safe to call on every startup: users
// and locations are only seeded when their tables are empty.
func (s *BootstrapService) Run(ctx context.Context) error {
	log := slogx.FromContext(ctx)

	usersEmpty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return err
	}
	locationsEmpty, err := s.Store.Locations().IsEmpty(ctx)
	if err != nil {
		return err
	}

	if locationsEmpty {
		if err := s.seedLocations(ctx); err != nil {
			return fmt.Errorf("seed locations: %w", err)
		}
		log.Info("location directory seeded")
	}

	// Default moderation mode, only when unset.
	if _, err := s.Store.Settings().Get(ctx, SettingAutoApprovePosts); errors.Is(err, store.ErrNotFound) {
		if err := s.Store.Settings().Set(ctx, SettingAutoApprovePosts, "true"); err != nil {
			return fmt.Errorf("seed settings: %w", err)
		}
	} else if err != nil {
		return err
	}

	if usersEmpty {
		if err := s.seedSuperAdmin(ctx); err != nil {
			return fmt.Errorf("seed super admin: %w", err)
		}
		log.Info("super admin and starter invites seeded",
			slog.String("mobile", s.AdminMobile))
	}

	return nil
}

func (s *BootstrapService) seedSuperAdmin(ctx context.Context) error {
	if s.AdminMobile == "" || s.AdminPassword == "" {
		return ErrBootstrapConfig
	}

	hash, err := cryptox.HashPassword(s.AdminPassword)
	if err != nil {
		return err
	}

	name := s.AdminName
	if name == "" {
		name = "Super Admin"
	}

	admin := domain.User{
		ID:           idx.New().String(),
		Name:         name,
		Mobile:       s.AdminMobile,
		PasswordHash: hash,
		Role:         domain.RoleSuperAdmin,
		IsActive:     true,
		CanPost:      true,
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().Create(ctx, admin); err != nil {
			return err
		}

		// One starter invite per role so registration works out of the box.
		starters := []struct {
			code string
			role domain.Role
		}{
			{"CADRE001", domain.RoleCadre},
			{"LEADER01", domain.RoleLeader},
			{"ADMIN001", domain.RoleAdmin},
		}
		for _, starter := range starters {
			invite := domain.Invite{
				ID:        idx.New().String(),
				Code:      starter.code,
				Role:      starter.role,
				CreatedBy: admin.ID,
			}
			if err := tx.Invites().Create(ctx, invite); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *BootstrapService) seedLocations(ctx context.Context) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		states := []struct {
			name      string
			nameTE    string
			districts []seedDistrict
		}{
			{"Andhra Pradesh", "ఆంధ్ర ప్రదేశ్", andhraDistricts},
			{"Telangana", "తెలంగాణ", telanganaDistricts},
		}

		for _, st := range states {
			state := domain.State{
				ID:     idx.New().String(),
				Name:   st.name,
				NameTE: st.nameTE,
			}
			if err := tx.Locations().CreateState(ctx, state); err != nil {
				return err
			}

			for _, d := range st.districts {
				district := domain.District{
					ID:      idx.New().String(),
					StateID: state.ID,
					Name:    d.name,
					NameTE:  d.nameTE,
				}
				if err := tx.Locations().CreateDistrict(ctx, district); err != nil {
					return err
				}

				// Placeholder constituencies until the real assembly
				// segment list is loaded.
				for _, suffix := range []string{" (Urban)", " (Rural)"} {
					constituency := domain.Constituency{
						ID:         idx.New().String(),
						DistrictID: district.ID,
						Name:       d.name + suffix,
					}
					if err := tx.Locations().CreateConstituency(ctx, constituency); err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
}
