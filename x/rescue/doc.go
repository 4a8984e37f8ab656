/*
Package rescue implements custody of funds recovered by a white hat after a
compromise.

A rescue instance holds the recovered coins until its owner releases them.
A release splits the whole balance of a single ticker between the hacker
(bounty), the committee and governance (tips). Whatever is left is sent to the
beneficiary. Shares are declared in basis points and the bounty cannot be
lower than 10%.

Instances are created by a factory. Each factory references a single template
and copies its own governance address into every instance it creates. Creating
an instance and initializing it happens in the same message, so an instance
is never observable in an uninitialized state. Templates are stored as already
initialized and cannot be initialized again.

The release role (owner) is transferred using a two phase handshake. The
current owner proposes a new owner that must accept the role. The owner can
also renounce the role, handing it back to the hacker. The committee role is
reassigned immediately by the committee itself.

Factory and template accounts cannot receive funds.
*/
package rescue
