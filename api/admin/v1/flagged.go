package v1

import (
	"github.com/coaching-ai/coachadmin/internal/model/gorm"
	"github.com/gogf/gf/v2/frame/g"
)

type FlaggedListReq struct {
	g.Meta `path:"/v1/flagged" method:"get" tags:"flagged" summary:"List flagged answers"`
	Status *string `v:"in:not_processed,processed,rejected" dc:"filter by status"`
	Page   int     `d:"1" v:"min:1" dc:"page number"`
	Size   int     `d:"20" v:"between:1,100" dc:"page size"`
}

type FlaggedListRes struct {
	List  []*gorm.FlaggedAnswer `json:"list" dc:"flagged answers"`
	Total int64                 `json:"total" dc:"total count"`
}

type FlaggedGetOneReq struct {
	g.Meta `path:"/v1/flagged/{id}" method:"get" tags:"flagged" summary:"Get one flagged answer with its documents"`
	Id     int64 `v:"required" dc:"flagged answer id"`
}

type FlaggedGetOneRes struct {
	*gorm.FlaggedAnswer `dc:"flagged answer"`
	Documents           []gorm.RagDocument `json:"documents" dc:"linked documents, reference order"`
}

type FlaggedUpdateStatusReq struct {
	g.Meta `path:"/v1/flagged/{id}/status" method:"patch" tags:"flagged" summary:"Mark flagged answer as processed or rejected"`
	Id     int64  `v:"required" dc:"flagged answer id"`
	Status string `v:"required|in:processed,rejected" dc:"target status"`
}

type FlaggedUpdateStatusRes struct{}

type FlaggedDocumentAddReq struct {
	g.Meta  `path:"/v1/flagged/{id}/documents" method:"post" tags:"flagged" summary:"Add a context document to flagged answer"`
	Id      int64  `v:"required" dc:"flagged answer id"`
	Content string `v:"required" dc:"document content"`
}

type FlaggedDocumentAddRes struct {
	*gorm.RagDocument `dc:"created document"`
}

type FlaggedDocumentUpdateReq struct {
	g.Meta  `path:"/v1/flagged/{id}/documents/{docId}" method:"put" tags:"flagged" summary:"Update a linked document's content"`
	Id      int64  `v:"required" dc:"flagged answer id"`
	DocId   int64  `v:"required" dc:"document id"`
	Content string `v:"required" dc:"document content"`
}

type FlaggedDocumentUpdateRes struct{}

type FlaggedDocumentDeleteReq struct {
	g.Meta `path:"/v1/flagged/{id}/documents/{docId}" method:"delete" tags:"flagged" summary:"Remove a linked document"`
	Id     int64 `v:"required" dc:"flagged answer id"`
	DocId  int64 `v:"required" dc:"document id"`
}

type FlaggedDocumentDeleteRes struct{}
