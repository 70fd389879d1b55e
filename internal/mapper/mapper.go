// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"request-approvals/internal/entities"
	api "request-approvals/internal/oapi"
)

// ToOAPIRequest maps entities.RequestForm to transport model.
func ToOAPIRequest(r entities.RequestForm) api.Request {
	approvals := make([]api.Approval, 0, len(r.Approvals))
	for _, a := range r.Approvals {
		approvals = append(approvals, ToOAPIApproval(a))
	}
	comments := make([]api.Comment, 0, len(r.Comments))
	for _, c := range r.Comments {
		comments = append(comments, ToOAPIComment(c))
	}
	items := make([]api.Item, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, api.Item{
			Id:            it.ID,
			Description:   it.Description,
			Quantity:      it.Quantity,
			Unit:          it.Unit,
			EstimatedCost: it.EstimatedCost,
		})
	}

	return api.Request{
		Id:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Type:        r.Type,
		RequestedBy: api.Requester{
			Id:       r.RequestedBy.ID,
			Name:     r.RequestedBy.Name,
			Avatar:   r.RequestedBy.Avatar,
			Position: r.RequestedBy.Position,
		},
		Department:    r.Department,
		DateRequested: r.DateRequested,
		DateNeeded:    r.DateNeeded,
		Status:        string(r.Status),
		CurrentLevel:  r.CurrentLevel,
		Approvals:     approvals,
		Comments:      comments,
		Items:         items,
	}
}

// ToOAPIRequestList maps a slice of requests to transport slice.
func ToOAPIRequestList(list []entities.RequestForm) []api.Request {
	res := make([]api.Request, 0, len(list))
	for _, r := range list {
		res = append(res, ToOAPIRequest(r))
	}
	return res
}

// ToOAPIApproval maps entities.Approval to transport model.
func ToOAPIApproval(a entities.Approval) api.Approval {
	out := api.Approval{
		Id:           a.ID,
		UserId:       a.UserID,
		UserName:     a.UserName,
		UserAvatar:   a.UserAvatar,
		UserPosition: a.UserPosition,
		Level:        a.Level,
		Status:       string(a.Status),
		Timestamp:    a.Timestamp,
	}
	if a.Comments != "" {
		c := a.Comments
		out.Comments = &c
	}
	return out
}

// ToOAPIComment maps entities.RequestComment to transport model.
func ToOAPIComment(c entities.RequestComment) api.Comment {
	return api.Comment{
		Id:         c.ID,
		RequestId:  c.RequestID,
		UserId:     c.UserID,
		UserName:   c.UserName,
		UserAvatar: c.UserAvatar,
		Content:    c.Content,
		Timestamp:  c.Timestamp,
	}
}

// ToOAPIPreApproverSet maps entities.PreApproverSet to transport model.
func ToOAPIPreApproverSet(s entities.PreApproverSet) api.PreApproverSet {
	approvers := make([]api.Approver, 0, len(s.Approvers))
	for _, a := range s.Approvers {
		approvers = append(approvers, api.Approver{
			UserId:       a.UserID,
			UserName:     a.UserName,
			UserAvatar:   a.UserAvatar,
			UserPosition: a.UserPosition,
			Level:        a.Level,
		})
	}
	return api.PreApproverSet{
		Id:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		RequestType: s.RequestType,
		Approvers:   approvers,
		IsDefault:   s.IsDefault,
		IsGlobal:    s.IsGlobal,
		CreatedBy:   s.CreatedBy,
	}
}

// ToOAPIUser maps entities.User to transport model.
func ToOAPIUser(u entities.User) api.User {
	return api.User{
		Id:            u.ID,
		Name:          u.Name,
		Avatar:        u.Avatar,
		Position:      u.Position,
		Role:          u.Role,
		Department:    u.Department,
		IsApprover:    u.IsApprover,
		ApproverLevel: u.ApproverLevel,
	}
}

// FromOAPICreate builds entities.RequestInput from transport DTO.
func FromOAPICreate(src api.PostRequestsJSONRequestBody) entities.RequestInput {
	approvers := make([]entities.Approver, 0, len(src.Approvers))
	for _, a := range src.Approvers {
		approvers = append(approvers, FromOAPIApprover(a))
	}
	return entities.RequestInput{
		Title:            src.Title,
		Description:      src.Description,
		Type:             src.Type,
		Department:       src.Department,
		DateNeeded:       src.DateNeeded,
		Items:            fromOAPIItems(src.Items),
		Approvers:        approvers,
		PreApproverSetID: src.PreApproverSetId,
		Submit:           src.Submit,
	}
}

// FromOAPIPatch builds entities.RequestPatch from transport DTO.
func FromOAPIPatch(src api.PatchRequestsIdJSONRequestBody) entities.RequestPatch {
	patch := entities.RequestPatch{
		Title:       src.Title,
		Description: src.Description,
		Type:        src.Type,
		Department:  src.Department,
		DateNeeded:  src.DateNeeded,
	}
	if src.Items != nil {
		items := fromOAPIItems(*src.Items)
		patch.Items = &items
	}
	return patch
}

// FromOAPIApprover maps a transport approver to entities.Approver.
func FromOAPIApprover(a api.Approver) entities.Approver {
	return entities.Approver{
		UserID:       a.UserId,
		UserName:     a.UserName,
		UserAvatar:   a.UserAvatar,
		UserPosition: a.UserPosition,
		Level:        a.Level,
	}
}

func fromOAPIItems(src []api.Item) []entities.RequestItem {
	items := make([]entities.RequestItem, 0, len(src))
	for _, it := range src {
		items = append(items, entities.RequestItem{
			ID:            it.Id,
			Description:   it.Description,
			Quantity:      it.Quantity,
			Unit:          it.Unit,
			EstimatedCost: it.EstimatedCost,
		})
	}
	return items
}
