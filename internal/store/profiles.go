package store

import (
	"context"
	"fmt"

	"spacesync-backend/internal/model"
	"spacesync-backend/internal/proximity"
)

// ListProfiles assembles one PersonProfile per requested member. The scoring
// engine depends only on this value object; the joins across person,
// psychometric, tag, collaboration-link and team-member rows stay here at
// the store boundary.
func (s *gormStore) ListProfiles(ctx context.Context, memberIDs []int64) (map[int64]proximity.PersonProfile, error) {
	profiles := make(map[int64]proximity.PersonProfile, len(memberIDs))
	if len(memberIDs) == 0 {
		return profiles, nil
	}

	var persons []model.Person
	if err := s.db.WithContext(ctx).Where("id IN ?", memberIDs).Find(&persons).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch persons: %w", err)
	}

	var scores []model.PsychometricScore
	if err := s.db.WithContext(ctx).Where("person_id IN ?", memberIDs).Find(&scores).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch psychometric scores: %w", err)
	}
	scoreMap := make(map[int64]model.PsychometricScore, len(scores))
	for _, sc := range scores {
		scoreMap[sc.PersonID] = sc
	}

	var tags []model.PersonTag
	if err := s.db.WithContext(ctx).Where("person_id IN ?", memberIDs).Order("id").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch person tags: %w", err)
	}
	tagMap := make(map[int64][]model.PersonTag)
	for _, tag := range tags {
		tagMap[tag.PersonID] = append(tagMap[tag.PersonID], tag)
	}

	var links []model.CollaborationLink
	if err := s.db.WithContext(ctx).Where("person_id IN ?", memberIDs).Order("id").Find(&links).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch collaboration links: %w", err)
	}
	linkMap := make(map[int64][]model.CollaborationLink)
	teamIDs := make([]int64, 0)
	seenTeams := make(map[int64]bool)
	for _, link := range links {
		linkMap[link.PersonID] = append(linkMap[link.PersonID], link)
		if link.TargetType == model.LinkTargetTeam && !seenTeams[link.TargetID] {
			seenTeams[link.TargetID] = true
			teamIDs = append(teamIDs, link.TargetID)
		}
	}

	teamMap := make(map[int64][]model.TeamMember)
	if len(teamIDs) > 0 {
		var members []model.TeamMember
		if err := s.db.WithContext(ctx).Where("team_id IN ?", teamIDs).Order("id").Find(&members).Error; err != nil {
			return nil, fmt.Errorf("failed to fetch team members: %w", err)
		}
		for _, m := range members {
			teamMap[m.TeamID] = append(teamMap[m.TeamID], m)
		}
	}

	for _, p := range persons {
		profile := proximity.PersonProfile{
			MemberID:  p.ID,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			JobTitle:  p.JobTitle,
			BirthDate: p.BirthDate,
		}

		if sc, ok := scoreMap[p.ID]; ok {
			profile.RIASEC = &proximity.RIASEC{
				Realistic:     sc.Realistic,
				Investigative: sc.Investigative,
				Artistic:      sc.Artistic,
				Social:        sc.Social,
				Enterprising:  sc.Enterprising,
				Conventional:  sc.Conventional,
			}
		}

		for _, tag := range tagMap[p.ID] {
			switch tag.Kind {
			case model.TagKindSoftSkill:
				profile.SoftSkills = append(profile.SoftSkills, tag.Tag)
			case model.TagKindValue:
				profile.Values = append(profile.Values, tag.Tag)
			case model.TagKindRisk:
				profile.RiskFactors = append(profile.RiskFactors, tag.Tag)
			}
		}

		for _, link := range linkMap[p.ID] {
			profile.Links = append(profile.Links, assembleLink(link, teamMap))
		}

		profiles[p.ID] = profile
	}
	return profiles, nil
}

func assembleLink(link model.CollaborationLink, teamMap map[int64][]model.TeamMember) proximity.CollaborationLink {
	out := proximity.CollaborationLink{
		Target:     proximity.LinkTarget(link.TargetType),
		TargetID:   link.TargetID,
		Percentage: link.Percentage,
		Affinity:   link.Affinity,
	}
	if link.TargetType == model.LinkTargetTeam {
		for _, m := range teamMap[link.TargetID] {
			out.Members = append(out.Members, proximity.TeamMemberShare{
				MemberID:     m.PersonID,
				SharePercent: m.SharePercent,
				Affinity:     m.Affinity,
			})
		}
	}
	return out
}
