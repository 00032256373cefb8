package service

import (
	"context"
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"

	apperrors "learncast-backend/internal/common/errors"
	"learncast-backend/internal/common/validation"
	"learncast-backend/internal/features/badge/models"
	"learncast-backend/internal/features/badge/signer"
	courserepo "learncast-backend/internal/features/course/repository"
	usermodels "learncast-backend/internal/features/user/models"
	userrepo "learncast-backend/internal/features/user/repository"
)

// MintService issues mint authorizations for completed courses.
type MintService interface {
	RequestMintAuthorization(ctx context.Context, req models.SignMintRequest) (*models.SignMintResponse, error)
}

type mintService struct {
	// signer is nil when MINT_SIGNER_PRIVATE_KEY is absent; every request
	// then fails with a configuration error instead of crashing at startup.
	signer  *signer.Signer
	courses courserepo.CourseRepository
	users   userrepo.UserRepository
}

func NewMintService(s *signer.Signer, courses courserepo.CourseRepository, users userrepo.UserRepository) MintService {
	return &mintService{signer: s, courses: courses, users: users}
}

// Ready reports whether the service has a signing key loaded. Exposed for
// the health endpoint.
func Ready(s MintService) bool {
	if ms, ok := s.(*mintService); ok {
		return ms.signer != nil
	}
	return false
}

// RequestMintAuthorization runs the eligibility gauntlet cheapest-check-first
// and signs only after every gate passes. It performs no writes: re-requests
// are safe and, with a fixed key, return byte-identical signatures.
//
// Two concurrent requests for the same (wallet, course) may both receive
// valid signatures. That race is accepted: the contract's single mint slot
// per (wallet, courseNumber) is the real linearization point, and the losing
// transaction fails on-chain. Do not add locking here; it cannot close the
// gap and only hides it.
func (s *mintService) RequestMintAuthorization(ctx context.Context, req models.SignMintRequest) (*models.SignMintResponse, error) {
	// 1. Environment. Message is generic client-side; the log carries the cause.
	if s.signer == nil {
		return nil, apperrors.New(apperrors.ErrCodeConfiguration, "signing key is not configured")
	}

	// 2. Input shape, before any store access.
	if err := validation.ValidateWalletAddress(req.UserAddress); err != nil {
		return nil, apperrors.New(apperrors.ErrCodeValidation, err.Error())
	}
	if err := validation.ValidateCourseID(req.CourseID); err != nil {
		return nil, apperrors.New(apperrors.ErrCodeValidation, err.Error())
	}

	// 3. On-chain mapping. Fail closed when the course has no number.
	courseNumber, err := s.courses.GetCourseNumber(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, courserepo.ErrCourseNotFound) || errors.Is(err, courserepo.ErrNoCourseNumber) {
			return nil, apperrors.New(apperrors.ErrCodeCourseNotMapped, "Course ID not found in mapping")
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeStore, "course registry read failed", err)
	}

	// 4. Identity. No user record means no recorded progress.
	user, err := s.resolveUser(ctx, req)
	if err != nil {
		if errors.Is(err, userrepo.ErrUserNotFound) {
			return nil, apperrors.New(apperrors.ErrCodeUserNotFound, "Complete the course first")
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeStore, "user lookup failed", err)
	}

	// The user record may carry a different wallet than the one being
	// authorized (lookup is by fid). The contract mints to the transaction
	// sender, so this is not exploitable by a third party, but it is worth
	// an audit trail.
	if user.WalletAddress != "" && !strings.EqualFold(user.WalletAddress, req.UserAddress) {
		log.Warn().
			Int64("fid", user.FID).
			Str("linked_wallet", user.WalletAddress).
			Str("requested_wallet", strings.ToLower(req.UserAddress)).
			Msg("mint authorization requested for a wallet other than the user's linked one")
	}

	// 5. Completion gate: exactly 100.
	percentage, err := s.users.CompletionPercentage(ctx, user.ID, req.CourseID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeStore, "completion read failed", err)
	}
	if percentage < 100 {
		return nil, apperrors.Newf(apperrors.ErrCodeCourseIncomplete,
			"Course not completed (%d%% done). Complete all lessons first.", percentage)
	}

	// 6. Advisory duplicate check. Saves gas and gives a faster error; the
	// contract stays authoritative.
	minted, err := s.users.HasMintedBadge(ctx, user.ID, req.CourseID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeStore, "minted badge read failed", err)
	}
	if minted {
		return nil, apperrors.New(apperrors.ErrCodeAlreadyMinted, "Badge already minted for this course")
	}

	// 7. Sign.
	signature, err := s.signer.SignMint(common.HexToAddress(req.UserAddress), courseNumber)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeSigning, "mint signing failed", err)
	}

	log.Info().
		Int64("fid", user.FID).
		Str("course_id", req.CourseID).
		Int64("course_number", courseNumber).
		Msg("mint authorization issued")

	return &models.SignMintResponse{
		Success:         true,
		Signature:       signature,
		CourseIDNumeric: courseNumber,
		SignerAddress:   s.signer.Address().Hex(),
	}, nil
}

func (s *mintService) resolveUser(ctx context.Context, req models.SignMintRequest) (*usermodels.User, error) {
	if req.FID > 0 {
		user, err := s.users.FindByFID(ctx, req.FID)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, userrepo.ErrUserNotFound) {
			return nil, err
		}
	}
	return s.users.FindByWallet(ctx, req.UserAddress)
}
